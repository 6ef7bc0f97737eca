package morph

import (
	"math"
	"time"
)

const (
	// fontSizeFloor keeps shrinking and growing glyphs at a small positive
	// size so zero-width glyph lookups stay valid.
	fontSizeFloor = 0.0001

	// lineEpsilon is the threshold below which two line offsets count as the
	// same line and are not interpolated.
	lineEpsilon = 0.01
)

// CharLimbo is the transient render state of one character on one frame:
// where it sits, how large it is, and how opaque, partway between its old and
// new appearance. Limbo values are rebuilt every frame and never mutated.
type CharLimbo struct {
	Char       string
	GlyphID    uint32
	Incoming   bool // true when drawn from the new text
	LineOffset float64
	Rect       Rect
	Alpha      float64
	Size       float64
	Progress   float64
}

// Limbo computes the characters to paint on the current frame: first every
// old-text character in index order (persisting or vanishing), then every
// appearing new-text character in index order. New-text characters whose
// transition is covered by a matched old-text character are not emitted
// twice. The returned slice is reused by the next Limbo call.
func (s *Session) Limbo() []CharLimbo {
	var start time.Time
	if debugMode {
		start = time.Now()
	}
	out := s.limboBuf[:0]
	out = s.appendOldLimbo(out)
	out = s.appendNewLimbo(out)
	s.limboBuf = out
	if debugMode {
		debugLimbo(len(out), time.Since(start))
	}
	return out
}

// appendOldLimbo runs pass one: characters of the old text. Matched
// characters slide toward their new slot; the rest hand off to the effect's
// Disappear override or the default scale-out.
func (s *Session) appendOldLimbo(out []CharLimbo) []CharLimbo {
	for i, ch := range s.old {
		p := s.charProgress(i, false)
		lay := s.oldLayout[i]

		d := s.diff[i]
		switch d.Disposition {
		case DispositionSame, DispositionMove, DispositionMoveAndAdd:
			target := s.newLayout[i+d.Offset]
			rect := lay.Rect
			rect.X = s.timing(p, lay.Rect.X, target.Rect.X-lay.Rect.X)
			lineOffset := lay.LineOffset
			if math.Abs(target.LineOffset-lay.LineOffset) > lineEpsilon {
				lineOffset = s.timing(p, lay.LineOffset, target.LineOffset-lay.LineOffset)
			}
			out = append(out, CharLimbo{
				Char:       ch,
				GlyphID:    lay.GlyphID,
				LineOffset: lineOffset,
				Rect:       rect,
				Alpha:      1,
				Size:       s.fontSize,
				Progress:   p,
			})
		default:
			st := s.charState(i, false, ch, lay, p)
			if s.effect.Disappear != nil {
				out = append(out, s.effect.Disappear(st))
			} else {
				out = append(out, s.scaleOut(st))
			}
		}
	}
	return out
}

// appendNewLimbo runs pass two: appearing characters of the new text.
func (s *Session) appendNewLimbo(out []CharLimbo) []CharLimbo {
	for j, ch := range s.new {
		if j >= len(s.diff) {
			break
		}
		d := s.diff[j]
		if d.Skip {
			continue
		}
		switch d.Disposition {
		case DispositionMoveAndAdd, DispositionReplace, DispositionAdd, DispositionDelete:
		default:
			// An unmatched Same/Move slot cannot arise from Diff, but is
			// tolerated as a no-op.
			continue
		}

		p := s.charProgress(j, true)
		st := s.charState(j, true, ch, s.newLayout[j], p)
		if s.effect.Appear != nil {
			out = append(out, s.effect.Appear(st))
		} else {
			out = append(out, s.scaleIn(st))
		}
	}
	return out
}

// charProgress computes the staggered local progress of one character, or
// delegates to the effect's Progress override.
func (s *Session) charProgress(index int, incoming bool) float64 {
	if s.effect.Progress != nil {
		return s.effect.Progress(index, s.progress, incoming)
	}
	if incoming {
		return clamp(s.progress-s.charDelay*float64(index), 0, 1)
	}
	return clamp(s.progress+s.charDelay*float64(index), 0, 1)
}

// charState packages one character for an effect closure.
func (s *Session) charState(index int, incoming bool, ch string, lay CharLayout, p float64) CharState {
	return CharState{
		Char:       ch,
		GlyphID:    lay.GlyphID,
		Index:      index,
		Incoming:   incoming,
		Progress:   p,
		Rect:       lay.Rect,
		LineOffset: lay.LineOffset,
		FontSize:   s.fontSize,
		Timing:     s.timing,
	}
}

// scaleOut is the default disappearance: the character shrinks toward a
// minimum positive size, sinks by the size delta, and fades with its local
// progress.
func (s *Session) scaleOut(st CharState) CharLimbo {
	l := st.Limbo()
	l.Size = math.Max(st.FontSize-st.Timing(st.Progress, 0, st.FontSize), fontSizeFloor)
	l.Rect.Y += st.FontSize - l.Size
	l.Alpha = 1 - st.Progress
	return l
}

// scaleIn is the default appearance: the character grows from a minimum
// positive size, descending into place. Opacity follows the global progress
// rather than the staggered local one.
func (s *Session) scaleIn(st CharState) CharLimbo {
	l := st.Limbo()
	l.Size = math.Max(st.Timing(st.Progress, 0, st.FontSize), fontSizeFloor)
	l.Rect.Y += st.FontSize - l.Size
	l.Alpha = s.progress
	return l
}
