package morph

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default label color.
var ColorWhite = Color{1, 1, 1, 1}

// BlendColor interpolates between two colors in RGB space by t in [0, 1]
// (clamped). Alpha is interpolated linearly alongside.
func BlendColor(from, to Color, t float64) Color {
	t = clamp(t, 0, 1)
	a := colorful.Color{R: from.R, G: from.G, B: from.B}
	b := colorful.Color{R: to.R, G: to.G, B: to.B}
	c := a.BlendRgb(b, t)
	return Color{R: c.R, G: c.G, B: c.B, A: from.A + (to.A-from.A)*t}
}

// Vec2 is a 2D vector used for positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// TextAlign controls horizontal alignment of laid-out lines within the
// render width handed to a layout provider.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align lines to the left edge (default)
	TextAlignCenter                  // center lines horizontally
	TextAlignRight                   // align lines to the right edge
)

// Chars splits s into user-perceived characters (grapheme clusters), so that
// multi-rune sequences like emoji or combining accents morph as single units.
// Returns nil for the empty string.
func Chars(s string) []string {
	if s == "" {
		return nil
	}
	chars := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}

// Default animation parameters. A zero Config resolves to these.
const (
	DefaultDuration  = 0.6   // seconds per morph
	DefaultCharDelay = 0.026 // seconds of stagger per character index
)

// Config holds the animation parameters of a label or session.
// The zero value means "all defaults": 0.6 s duration, 0.026 s per-character
// delay, the "scale" effect, quintic ease-out, morphing enabled.
type Config struct {
	// Duration is the length of one morph in seconds, excluding the
	// per-character stagger. Zero selects DefaultDuration; a negative
	// duration reaches the scheduler, which completes the session on its
	// first tick.
	Duration float64

	// CharDelay staggers the start of each character's transition by
	// CharDelay * index seconds. Zero selects DefaultCharDelay.
	CharDelay float64

	// Effect selects a registered effect by name. Empty or unknown names
	// fall back to the default "scale" behavior.
	Effect string

	// Easing is the interpolation curve for character movement and the
	// default scale effect. Nil selects gween's OutQuint.
	Easing ease.TweenFunc

	// Disabled turns morphing off: text changes render immediately with no
	// transition frames.
	Disabled bool
}

// resolve fills in defaults for zero-valued fields.
func (c Config) resolve() Config {
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if c.CharDelay == 0 {
		c.CharDelay = DefaultCharDelay
	}
	if c.Easing == nil {
		c.Easing = ease.OutQuint
	}
	return c
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
