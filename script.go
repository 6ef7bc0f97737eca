package morph

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a morph script.
type scriptStep struct {
	Action string `json:"action,omitempty"` // "text" (default) or "wait"
	Text   string `json:"text,omitempty"`
	Effect string `json:"effect,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a morph script.
type script struct {
	Loop  bool         `json:"loop,omitempty"`
	Steps []scriptStep `json:"steps"`
}

// Script sequences text changes on a Label across frames, for demos and
// automated visual testing. Call Step once per frame from your game's
// Update, before the label's own Update.
type Script struct {
	loop      bool
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON morph script.
func LoadScript(jsonData []byte) (*Script, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("morph: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("morph: parse script: no steps")
	}
	return &Script{loop: sc.Loop, steps: sc.Steps}, nil
}

// Done reports whether all steps in the script have been executed. A looping
// script is never done.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one frame. A "text" step changes the label's
// text (optionally switching the effect first); the script then waits for
// the triggered morph to finish before advancing. A "wait" step holds for
// the given number of frames.
func (r *Script) Step(l *Label) {
	if r.done {
		return
	}
	// Let a running morph finish before advancing.
	if l.Morphing() {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		if !r.loop {
			r.done = true
			return
		}
		r.cursor = 0
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "", "text":
		if st.Effect != "" {
			l.Config.Effect = st.Effect
		}
		l.SetText(st.Text)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if !r.loop && r.cursor >= len(r.steps) && r.waitCount == 0 && !l.Morphing() {
		r.done = true
	}
}
