package morph

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// CharState is the input handed to an effect's Appear or Disappear override:
// one character of a morph and everything needed to compute its limbo.
type CharState struct {
	Char       string
	GlyphID    uint32
	Index      int
	Incoming   bool    // true for new-text characters
	Progress   float64 // per-character progress, after any Progress override
	Rect       Rect
	LineOffset float64
	FontSize   float64
	Timing     TimingFunc
}

// Limbo returns a CharLimbo pre-filled with the state's identity fields, full
// opacity, and the session font size. Effect closures adjust from there.
func (st CharState) Limbo() CharLimbo {
	return CharLimbo{
		Char:       st.Char,
		GlyphID:    st.GlyphID,
		Incoming:   st.Incoming,
		LineOffset: st.LineOffset,
		Rect:       st.Rect,
		Alpha:      1,
		Size:       st.FontSize,
		Progress:   st.Progress,
	}
}

// Effect customizes the phases of a morph. Every field is optional; a nil
// field falls back to the default scale behavior, so the zero Effect is the
// "scale" effect itself.
type Effect struct {
	// Start is invoked once when a session begins running, before its first
	// frame. Effects reset internal state here.
	Start func()

	// Appear computes the limbo of an appearing new-text character. The
	// result is used verbatim.
	Appear func(CharState) CharLimbo

	// Disappear computes the limbo of a vanishing old-text character. The
	// result is used verbatim.
	Disappear func(CharState) CharLimbo

	// Progress reshapes the per-character progress. incoming marks new-text
	// characters. When nil, the default stagger of CharDelay * index applies
	// (added for old-text characters, subtracted for new ones).
	Progress func(index int, progress float64, incoming bool) float64

	// Draw paints one limbo itself and reports whether it did. Returning
	// false falls back to the label's glyph painting.
	Draw func(dst *ebiten.Image, limbo CharLimbo) bool

	// SkipFrames throttles repaint requests so the effect renders only every
	// (SkipFrames+1)th tick. Zero repaints every tick.
	SkipFrames int
}

// effects maps registered names to effect values. Not locked; register
// before the game loop starts.
var effects = map[string]Effect{}

// RegisterEffect makes an effect selectable by name via Config.Effect.
// Registering a name again replaces the previous effect; sessions already
// running keep the effect they started with.
func RegisterEffect(name string, e Effect) {
	effects[name] = e
}

// effectByName returns the registered effect, or the zero Effect (the
// default scale behavior) for empty or unknown names.
func effectByName(name string) Effect {
	return effects[name]
}

func init() {
	RegisterEffect("scale", Effect{})
	RegisterEffect("evaporate", evaporateEffect())
	RegisterEffect("fall", fallEffect())
}

// evaporateEffect morphs characters in three interleaved waves: vanishing
// characters drift upward and fade, appearing ones settle down into place.
func evaporateEffect() Effect {
	return Effect{
		Progress: func(index int, progress float64, incoming bool) float64 {
			wave := float64(index % 3)
			if incoming {
				wave = float64(2 - index%3)
			}
			return clamp(progress*1.5-0.25*wave, 0, 1)
		},
		Disappear: func(st CharState) CharLimbo {
			l := st.Limbo()
			l.Rect.Y -= st.Timing(st.Progress, 0, st.FontSize*0.6)
			l.Alpha = 1 - st.Progress
			return l
		},
		Appear: func(st CharState) CharLimbo {
			l := st.Limbo()
			l.Rect.Y -= (1 - st.Timing(st.Progress, 0, 1)) * st.FontSize * 0.6
			l.Alpha = st.Progress
			return l
		},
	}
}

// fallEffect drops vanishing characters below the baseline with a cubic
// ease-in while new characters scale in from slightly above.
func fallEffect() Effect {
	drop := Timing(ease.InCubic)
	return Effect{
		Progress: func(index int, progress float64, incoming bool) float64 {
			stagger := math.Min(0.3, 0.03*float64(index))
			return clamp(progress*1.3-stagger, 0, 1)
		},
		Disappear: func(st CharState) CharLimbo {
			l := st.Limbo()
			l.Rect.Y += drop(st.Progress, 0, st.FontSize*1.6)
			l.Alpha = 1 - st.Progress
			return l
		},
		Appear: func(st CharState) CharLimbo {
			l := st.Limbo()
			l.Size = math.Max(st.Timing(st.Progress, 0, st.FontSize), fontSizeFloor)
			l.Rect.Y += st.FontSize - l.Size
			l.Rect.Y -= (1 - st.Progress) * st.FontSize * 0.4
			l.Alpha = st.Progress
			return l
		},
	}
}
