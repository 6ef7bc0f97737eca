package morph

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func bitmapLayouts(t *testing.T, s string, align TextAlign, size Vec2) []CharLayout {
	t.Helper()
	l := &BitmapLayout{Font: loadTestFont(t), Align: align}
	return l.Layout(Chars(s), size)
}

// --- BitmapLayout ---

func TestBitmapLayout_OneEntryPerChar(t *testing.T) {
	for _, s := range []string{"", "A", "AB", "AB\nA", "\nA", "A Z"} {
		got := bitmapLayouts(t, s, TextAlignLeft, Vec2{})
		if len(got) != len(Chars(s)) {
			t.Errorf("%q: %d layouts for %d chars", s, len(got), len(Chars(s)))
		}
	}
}

func TestBitmapLayout_AdvanceAndKerning(t *testing.T) {
	got := bitmapLayouts(t, "AB", TextAlignLeft, Vec2{})

	// A: x = 0 + xoffset(1), box 20x30 at yoffset 2.
	a := got[0]
	if a.Rect.X != 1 || a.Rect.Y != 2 || a.Rect.Width != 20 || a.Rect.Height != 30 {
		t.Errorf("A rect = %+v, want {1 2 20 30}", a.Rect)
	}
	if a.GlyphID != 'A' {
		t.Errorf("A glyph id = %d, want %d", a.GlyphID, 'A')
	}

	// B: cursor 22 + kern(A,B) -2 + xoffset 1 = 21.
	b := got[1]
	if b.Rect.X != 21 {
		t.Errorf("B x = %f, want 21", b.Rect.X)
	}
	if b.Rect.Width != 18 {
		t.Errorf("B width = %f, want 18", b.Rect.Width)
	}
}

func TestBitmapLayout_Newline(t *testing.T) {
	got := bitmapLayouts(t, "AB\nA", TextAlignLeft, Vec2{})

	// The newline is a zero-size box at the end of the line it terminates.
	nl := got[2]
	if nl.Char != "\n" || nl.Rect.X != 40 || nl.Rect.Width != 0 || nl.LineOffset != 0 {
		t.Errorf("newline layout = %+v, want zero-size box at x=40 on line 0", nl)
	}

	// The following A starts the next line.
	a := got[3]
	if a.LineOffset != 40 {
		t.Errorf("second-line offset = %f, want 40", a.LineOffset)
	}
	if a.Rect.X != 1 {
		t.Errorf("second-line A x = %f, want 1", a.Rect.X)
	}
}

func TestBitmapLayout_Alignment(t *testing.T) {
	// Line "AB" is 40 wide in a 100-wide area.
	right := bitmapLayouts(t, "AB", TextAlignRight, Vec2{X: 100})
	if right[0].Rect.X != 61 {
		t.Errorf("right-aligned A x = %f, want 61", right[0].Rect.X)
	}

	center := bitmapLayouts(t, "AB", TextAlignCenter, Vec2{X: 100})
	if center[0].Rect.X != 31 {
		t.Errorf("centered A x = %f, want 31", center[0].Rect.X)
	}

	// Each line aligns by its own width.
	lines := bitmapLayouts(t, "AB\nA", TextAlignRight, Vec2{X: 100})
	if lines[3].Rect.X != 79 {
		t.Errorf("right-aligned second-line A x = %f, want 79 (100-22+1)", lines[3].Rect.X)
	}

	// Alignment needs a width; a zero Size leaves positions alone.
	none := bitmapLayouts(t, "AB", TextAlignCenter, Vec2{})
	if none[0].Rect.X != 1 {
		t.Errorf("unaligned A x = %f, want 1", none[0].Rect.X)
	}
}

func TestBitmapLayout_MissingGlyph(t *testing.T) {
	got := bitmapLayouts(t, "AZB", TextAlignLeft, Vec2{})

	// Z: zero-size box at the cursor, no advance, glyph id 0.
	z := got[1]
	if z.Rect.X != 22 || z.Rect.Width != 0 || z.Rect.Height != 0 || z.GlyphID != 0 {
		t.Errorf("Z layout = %+v, want empty box at cursor", z)
	}

	// The gap also suppresses kerning into B.
	if b := got[2]; b.Rect.X != 23 {
		t.Errorf("B x = %f, want 23 (no kerning across the gap)", b.Rect.X)
	}
}

func TestBitmapLayout_CombiningCluster(t *testing.T) {
	// A + combining acute accent segments as one character; the missing
	// accent glyph contributes nothing, the cluster box spans the advances.
	got := bitmapLayouts(t, "ÁB", TextAlignLeft, Vec2{})
	if len(got) != 2 {
		t.Fatalf("layout count = %d, want 2", len(got))
	}
	cluster := got[0]
	if cluster.GlyphID != 'A' {
		t.Errorf("cluster glyph id = %d, want %d", cluster.GlyphID, 'A')
	}
	if cluster.Rect.Width != 22 {
		t.Errorf("cluster width = %f, want the summed advance 22", cluster.Rect.Width)
	}
	if b := got[1]; b.Rect.X != 23 {
		t.Errorf("B x = %f, want 23", b.Rect.X)
	}
}

// --- GoTextLayout ---

func TestGoTextLayout_OneEntryPerChar(t *testing.T) {
	f := loadTestTTF(t, 24)
	l := &GoTextLayout{Font: f}
	for _, s := range []string{"", "HI", "A B", "AB\nC", "\nA"} {
		got := l.Layout(Chars(s), Vec2{})
		if len(got) != len(Chars(s)) {
			t.Errorf("%q: %d layouts for %d chars", s, len(got), len(Chars(s)))
		}
	}
}

func TestGoTextLayout_CellGeometry(t *testing.T) {
	f := loadTestTTF(t, 24)
	l := &GoTextLayout{Font: f}
	got := l.Layout(Chars("HELLO"), Vec2{})

	if got[0].Rect.X != 0 {
		t.Errorf("first char x = %f, want 0", got[0].Rect.X)
	}
	for i, lay := range got {
		if lay.Rect.Width <= 0 {
			t.Errorf("char %d width = %f, want positive", i, lay.Rect.Width)
		}
		if lay.Rect.Y != 0 {
			t.Errorf("char %d y = %f, want 0 (cell convention)", i, lay.Rect.Y)
		}
		if lay.Rect.Height <= 0 {
			t.Errorf("char %d height = %f, want positive", i, lay.Rect.Height)
		}
		if lay.GlyphID == 0 {
			t.Errorf("char %d glyph id = 0, want a shaped glyph", i)
		}
	}

	// Boxes tile the line: each cell ends where the next begins, and the
	// last ends at the full advance.
	for i := 0; i < len(got)-1; i++ {
		end := got[i].Rect.X + got[i].Rect.Width
		if math.Abs(end-got[i+1].Rect.X) > 1e-6 {
			t.Errorf("cell %d ends at %f, next begins at %f", i, end, got[i+1].Rect.X)
		}
	}
	last := got[len(got)-1]
	if total := text.Advance("HELLO", f.face); math.Abs((last.Rect.X+last.Rect.Width)-total) > 1e-6 {
		t.Errorf("cells end at %f, line advance is %f", last.Rect.X+last.Rect.Width, total)
	}
}

func TestGoTextLayout_Newline(t *testing.T) {
	f := loadTestTTF(t, 24)
	l := &GoTextLayout{Font: f}
	got := l.Layout(Chars("AB\nC"), Vec2{})

	nl := got[2]
	if nl.Char != "\n" || nl.LineOffset != 0 || nl.Rect.Width != 0 {
		t.Errorf("newline layout = %+v, want zero-size box on line 0", nl)
	}
	if want := got[1].Rect.X + got[1].Rect.Width; math.Abs(nl.Rect.X-want) > 1e-6 {
		t.Errorf("newline x = %f, want end of line %f", nl.Rect.X, want)
	}

	c := got[3]
	if math.Abs(c.LineOffset-f.lh) > 1e-6 {
		t.Errorf("second-line offset = %f, want line height %f", c.LineOffset, f.lh)
	}
	if c.Rect.X != 0 {
		t.Errorf("second-line C x = %f, want 0", c.Rect.X)
	}
}

func TestGoTextLayout_Alignment(t *testing.T) {
	f := loadTestTTF(t, 24)
	l := &GoTextLayout{Font: f, Align: TextAlignCenter}
	got := l.Layout(Chars("HI"), Vec2{X: 300})

	w := text.Advance("HI", f.face)
	want := (300 - w) / 2
	if math.Abs(got[0].Rect.X-want) > 1e-6 {
		t.Errorf("centered H x = %f, want %f", got[0].Rect.X, want)
	}
}
