package morph

import (
	"math"
	"slices"
	"time"
)

// completionSlackFrames is the safety margin past the computed frame budget
// after which a session always terminates, bounding miscomputed totals.
const completionSlackFrames = 5

// State is the lifecycle phase of a Session.
type State uint8

const (
	StateIdle     State = iota // zero value, before a transition is armed
	StateRunning               // advancing once per external tick
	StateComplete              // finished; no more repaints
)

// String names the state for debug output.
func (st State) String() string {
	switch st {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// Transition describes one text change handed to NewSession: the old and new
// character sequences with their measured layouts, and the font size the
// scale effect animates around. Layouts must be index-aligned with their
// character slices.
type Transition struct {
	Old, New             []string
	OldLayout, NewLayout []CharLayout
	FontSize             float64
}

// Session owns one morph from the moment the text changes until every
// character has settled. It is advanced by Tick once per frame of an external
// clock and asked for its Limbo by the painting side. A session is superseded
// by simply creating its successor; there is no cancel operation.
//
// All session state is confined to the tick/paint path; no locking.
type Session struct {
	old, new  []string
	diff      DiffResult
	oldLayout []CharLayout
	newLayout []CharLayout

	progress         float64
	frame            int
	totalFrames      int
	totalDelayFrames int

	duration  float64
	charDelay float64
	fontSize  float64
	timing    TimingFunc
	effect    Effect

	state       State
	started     bool
	textsDiffer bool
	sinceDraw   int
	limboBuf    []CharLimbo

	// Lifecycle callbacks, nil by default. OnStart fires before the first
	// frame advances, OnProgress after every advance with the new global
	// progress, OnComplete exactly once when the session finishes.
	OnStart    func()
	OnProgress func(float64)
	OnComplete func()
}

// NewSession classifies the transition and prepares a session at progress
// zero. Equal texts, or a disabled config, yield a session that is already
// complete: the new text renders statically and no callbacks fire.
//
// Panics if a layout slice is not index-aligned with its character slice;
// downstream interpolation indexes layouts by construction, without bounds
// checks.
func NewSession(tr Transition, cfg Config) *Session {
	if len(tr.OldLayout) != len(tr.Old) || len(tr.NewLayout) != len(tr.New) {
		panic("morph: layout length does not match character count")
	}
	cfg = cfg.resolve()

	diffStart := time.Now()
	d := Diff(tr.Old, tr.New)
	debugDiff(len(tr.Old), len(tr.New), d, time.Since(diffStart))

	s := &Session{
		old:         tr.Old,
		new:         tr.New,
		diff:        d,
		oldLayout:   tr.OldLayout,
		newLayout:   tr.NewLayout,
		duration:    cfg.Duration,
		charDelay:   cfg.CharDelay,
		fontSize:    tr.FontSize,
		timing:      Timing(cfg.Easing),
		effect:      effectByName(cfg.Effect),
		textsDiffer: !slices.Equal(tr.Old, tr.New),
	}
	if !s.textsDiffer || cfg.Disabled {
		s.state = StateComplete
		return s
	}
	s.state = StateRunning
	return s
}

// Tick advances the session by one frame. interval is the seconds the
// external clock reports since its previous tick; the first tick fixes the
// session's frame budget from it. Tick reports whether this frame should be
// repainted (false once complete, and on frames a SkipFrames effect
// throttles away).
func (s *Session) Tick(interval float64) bool {
	if s.state != StateRunning {
		return false
	}
	if !s.started {
		s.started = true
		if s.effect.Start != nil {
			s.effect.Start()
		}
		if s.OnStart != nil {
			s.OnStart()
		}
		debugSession("session start", s)
	}

	if s.totalFrames == 0 {
		if interval > 0 {
			s.totalFrames = int(math.Ceil(s.duration / interval))
			chars := len(s.new)
			if chars < 1 {
				chars = 1
			}
			s.totalDelayFrames = int(math.Ceil(float64(chars) * s.charDelay / interval))
		}
		if s.totalFrames <= 0 {
			s.complete()
			return false
		}
	}

	s.frame++
	if !s.textsDiffer || s.frame >= s.totalFrames+s.totalDelayFrames+completionSlackFrames {
		s.complete()
		return false
	}

	s.progress += 1 / float64(s.totalFrames)
	repaint := true
	if s.effect.SkipFrames > 0 {
		s.sinceDraw++
		if s.sinceDraw <= s.effect.SkipFrames {
			repaint = false
		} else {
			s.sinceDraw = 0
		}
	}
	if s.OnProgress != nil {
		s.OnProgress(s.progress)
	}
	return repaint
}

// complete transitions to StateComplete and fires OnComplete once.
func (s *Session) complete() {
	if s.state == StateComplete {
		return
	}
	s.state = StateComplete
	debugSession("session complete", s)
	if s.OnComplete != nil {
		s.OnComplete()
	}
}

// State returns the session's lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Progress returns the global progress of the morph. It starts at zero,
// grows by 1/totalFrames per tick, and may exceed 1 during the slack frames
// at the tail of a session.
func (s *Session) Progress() float64 {
	return s.progress
}

// Diff returns the session's character classification.
func (s *Session) Diff() DiffResult {
	return s.diff
}
