package morph

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the measurement contract shared by BitmapFont and TTFFont:
// whole-string extents and the baseline-to-baseline line height.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- BitmapFont ---

const asciiGlyphCount = 128

// glyphMetrics holds the measured box of one bitmap glyph. Atlas coordinates
// are not kept; morph only needs geometry.
type glyphMetrics struct {
	id       rune
	width    uint16
	height   uint16
	xOffset  int16
	yOffset  int16
	xAdvance int16
}

// BitmapFont measures text from BMFont metrics. Its exact integer glyph
// boxes make it the deterministic choice for layout tests and cell-based
// renderers.
type BitmapFont struct {
	lineHeight float64
	base       float64

	asciiGlyphs [asciiGlyphCount]glyphMetrics // fixed array for ASCII, zero-alloc lookup
	asciiSet    [asciiGlyphCount]bool
	extGlyphs   map[rune]*glyphMetrics

	kernings map[[2]rune]int16
}

// MeasureString returns the width and height of the rendered text.
func (f *BitmapFont) MeasureString(s string) (width, height float64) {
	var maxW, cursorX float64
	var prevRune rune
	var hasPrev bool
	lines := 1

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if r == '\n' {
			if cursorX > maxW {
				maxW = cursorX
			}
			cursorX = 0
			lines++
			hasPrev = false
			continue
		}

		g := f.glyph(r)
		if g == nil {
			hasPrev = false
			continue
		}
		if hasPrev {
			cursorX += float64(f.kern(prevRune, r))
		}
		cursorX += float64(g.xAdvance)
		prevRune = r
		hasPrev = true
	}

	if cursorX > maxW {
		maxW = cursorX
	}
	return maxW, float64(lines) * f.lineHeight
}

// LineHeight returns the vertical distance between baselines.
func (f *BitmapFont) LineHeight() float64 {
	return f.lineHeight
}

// glyph returns the metrics for the given rune, or nil if the font has none.
func (f *BitmapFont) glyph(r rune) *glyphMetrics {
	if r >= 0 && r < asciiGlyphCount {
		if f.asciiSet[r] {
			return &f.asciiGlyphs[r]
		}
		return nil
	}
	if g, ok := f.extGlyphs[r]; ok {
		return g
	}
	return nil
}

// kern returns the kerning amount for the given rune pair.
func (f *BitmapFont) kern(first, second rune) int16 {
	if f.kernings == nil {
		return 0
	}
	return f.kernings[[2]rune{first, second}]
}

// LoadBitmapFont parses BMFont .fnt text-format data into a metrics-only
// font. Atlas page references in the data are ignored.
func LoadBitmapFont(fntData []byte) (*BitmapFont, error) {
	f := &BitmapFont{}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "common":
			if v, ok := fields["lineHeight"]; ok {
				f.lineHeight, _ = strconv.ParseFloat(v, 64)
			}
			if v, ok := fields["base"]; ok {
				f.base, _ = strconv.ParseFloat(v, 64)
			}

		case "char":
			charCount++
			g := glyphMetrics{}
			g.id = rune(fieldInt(fields, "id"))
			g.width = uint16(fieldInt(fields, "width"))
			g.height = uint16(fieldInt(fields, "height"))
			g.xOffset = int16(fieldInt(fields, "xoffset"))
			g.yOffset = int16(fieldInt(fields, "yoffset"))
			g.xAdvance = int16(fieldInt(fields, "xadvance"))

			if g.id >= 0 && g.id < asciiGlyphCount {
				f.asciiGlyphs[g.id] = g
				f.asciiSet[g.id] = true
			} else {
				if f.extGlyphs == nil {
					f.extGlyphs = make(map[rune]*glyphMetrics)
				}
				f.extGlyphs[g.id] = &g
			}

		case "kerning":
			first := rune(fieldInt(fields, "first"))
			second := rune(fieldInt(fields, "second"))
			amount := int16(fieldInt(fields, "amount"))
			if f.kernings == nil {
				f.kernings = make(map[[2]rune]int16)
			}
			f.kernings[[2]rune{first, second}] = amount
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("morph: error reading .fnt data: %w", err)
	}

	if f.lineHeight == 0 {
		return nil, fmt.Errorf("morph: .fnt data missing common lineHeight")
	}
	if charCount == 0 {
		return nil, fmt.Errorf("morph: .fnt data has no char definitions")
	}

	return f, nil
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}

// fieldInt reads an integer field, defaulting to 0 when absent or malformed.
func fieldInt(fields map[string]string, key string) int {
	v, ok := fields[key]
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(v)
	return n
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType measurement and painting.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("morph: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the font was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
