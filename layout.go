package morph

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CharLayout is the measured geometry of one character in one text snapshot:
// its glyph, the vertical offset of the line it sits on, and its bounding
// rectangle relative to the line's top-left. Layouts are immutable for the
// lifetime of a session; every session holds two snapshots, old and new.
type CharLayout struct {
	Char       string
	GlyphID    uint32
	LineOffset float64
	Rect       Rect
}

// LayoutProvider measures per-character geometry for a character sequence
// inside a render area. Implementations must be stable (same input, same
// output) and return exactly one CharLayout per character, in index order.
type LayoutProvider interface {
	Layout(chars []string, size Vec2) []CharLayout
}

// alignOffset returns the horizontal shift of a line for the given alignment
// and reference width. A non-positive reference width disables alignment.
func alignOffset(align TextAlign, refWidth, lineWidth float64) float64 {
	if refWidth <= 0 {
		return 0
	}
	switch align {
	case TextAlignCenter:
		return (refWidth - lineWidth) / 2
	case TextAlignRight:
		return refWidth - lineWidth
	}
	return 0
}

// --- BitmapLayout ---

// BitmapLayout measures characters against BMFont metrics. Integer glyph
// boxes and explicit kerning make its output exact and deterministic.
type BitmapLayout struct {
	Font  *BitmapFont
	Align TextAlign
}

// Layout measures one box per character. Newlines produce a zero-size box at
// the end of the line they terminate; characters without glyphs produce a
// zero-size box and no advance.
func (l *BitmapLayout) Layout(chars []string, size Vec2) []CharLayout {
	f := l.Font
	lh := f.LineHeight()
	out := make([]CharLayout, 0, len(chars))

	var cursorX float64
	var line int
	lineStart := 0 // index into out where the current line begins
	var prevRune rune
	var hasPrev bool

	flushLine := func(width float64) {
		if offset := alignOffset(l.Align, size.X, width); offset != 0 {
			for i := lineStart; i < len(out); i++ {
				out[i].Rect.X += offset
			}
		}
		lineStart = len(out)
	}

	for _, ch := range chars {
		if ch == "\n" {
			out = append(out, CharLayout{
				Char:       ch,
				LineOffset: float64(line) * lh,
				Rect:       Rect{X: cursorX},
			})
			flushLine(cursorX)
			cursorX = 0
			line++
			hasPrev = false
			continue
		}

		lay := CharLayout{Char: ch, LineOffset: float64(line) * lh}
		var advance float64
		first := true
		for _, r := range ch {
			g := f.glyph(r)
			if g == nil {
				hasPrev = false
				continue
			}
			kern := 0.0
			if hasPrev {
				kern = float64(f.kern(prevRune, r))
			}
			if first {
				lay.GlyphID = uint32(r)
				lay.Rect.X = cursorX + kern + float64(g.xOffset)
				lay.Rect.Y = float64(g.yOffset)
				lay.Rect.Width = float64(g.width)
				lay.Rect.Height = float64(g.height)
				first = false
			} else if h := float64(g.height); h > lay.Rect.Height {
				lay.Rect.Height = h
			}
			advance += kern + float64(g.xAdvance)
			prevRune = r
			hasPrev = true
		}
		if first {
			// No glyph for any rune of the cluster.
			lay.Rect.X = cursorX
		} else if utf8.RuneCountInString(ch) > 1 {
			// Multi-rune cluster: the box spans the summed advances.
			lay.Rect.Width = advance
		}
		out = append(out, lay)
		cursorX += advance
	}
	flushLine(cursorX)

	return out
}

// --- GoTextLayout ---

// GoTextLayout measures characters against a TrueType face via Ebitengine's
// text/v2. Horizontal positions come from prefix advances, so kerning inside
// a line is respected; glyph identifiers come from the shaped glyph run.
// Boxes use the cell convention: Y is 0 at the line top and Height is
// ascent+descent, so a box can be handed straight back to text.Draw.
type GoTextLayout struct {
	Font  *TTFFont
	Align TextAlign
}

// Layout measures one box per character. Lines are shaped independently and
// stacked LineHeight apart.
func (l *GoTextLayout) Layout(chars []string, size Vec2) []CharLayout {
	f := l.Font
	out := make([]CharLayout, 0, len(chars))

	var lineChars []string
	var line int
	flushLine := func() {
		out = l.appendLine(out, lineChars, float64(line)*f.lh, size)
		lineChars = lineChars[:0]
		line++
	}

	for _, ch := range chars {
		if ch == "\n" {
			flushLine()
			// The newline itself: a zero-size box at the end of the line it
			// terminates.
			last := 0.0
			if n := len(out); n > 0 && out[n-1].LineOffset == float64(line-1)*f.lh {
				last = out[n-1].Rect.X + out[n-1].Rect.Width
			}
			out = append(out, CharLayout{
				Char:       ch,
				LineOffset: float64(line-1) * f.lh,
				Rect:       Rect{X: last},
			})
			continue
		}
		lineChars = append(lineChars, ch)
	}
	flushLine()

	return out
}

// appendLine shapes one line of characters and appends their layouts.
func (l *GoTextLayout) appendLine(out []CharLayout, lineChars []string, lineOffset float64, size Vec2) []CharLayout {
	if len(lineChars) == 0 {
		return out
	}
	f := l.Font
	lineStr := strings.Join(lineChars, "")
	glyphs := text.AppendGlyphs(nil, lineStr, f.face, nil)

	m := f.face.Metrics()
	cellH := m.HAscent + m.HDescent

	lineStart := len(out)
	byteOff := 0
	xStart := 0.0
	for _, ch := range lineChars {
		end := byteOff + len(ch)
		xEnd := text.Advance(lineStr[:end], f.face)

		lay := CharLayout{
			Char:       ch,
			LineOffset: lineOffset,
			Rect:       Rect{X: xStart, Width: xEnd - xStart, Height: cellH},
		}
		for gi := range glyphs {
			g := &glyphs[gi]
			if g.StartIndexInBytes >= byteOff && g.StartIndexInBytes < end {
				lay.GlyphID = g.GID
				break
			}
		}
		out = append(out, lay)
		byteOff = end
		xStart = xEnd
	}

	if offset := alignOffset(l.Align, size.X, xStart); offset != 0 {
		for i := lineStart; i < len(out); i++ {
			out[i].Rect.X += offset
		}
	}
	return out
}
