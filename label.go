package morph

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// --- Label ---

// Label is a positioned text element that animates between texts. Setting a
// new text starts a morph: characters shared with the previous text slide to
// their new slots while the rest transition out and in under the configured
// effect. A label with no running morph draws its text in a single call.
type Label struct {
	// X, Y is the top-left corner of the label's first line.
	X, Y float64

	// Size is the area the text is laid out in. Alignment needs a positive
	// width; a zero Size left-aligns.
	Size Vec2

	// Align positions each line inside Size.
	Align TextAlign

	// Color tints the text. When a morph starts, the label crossfades from
	// the color it was last drawn with, so changing Color right after
	// SetText fades the text toward the new color as it morphs.
	Color Color

	// Config holds the morph settings applied to the next SetText.
	Config Config

	// Provider measures per-character geometry. Leave nil to lay out with
	// the label's own font and Align.
	Provider LayoutProvider

	// Morph lifecycle callbacks, invoked from Update. All optional.
	OnMorphStart    func()
	OnMorphProgress func(progress float64)
	OnMorphComplete func()

	font *TTFFont

	// Current target text and its cached layout (unexported)
	text    string
	chars   []string
	layouts []CharLayout

	session *Session

	// Color crossfade state (unexported)
	prevColor  Color
	drawnColor Color
	hasDrawn   bool

	drawOp text.DrawOptions // reused across draws
}

// NewLabel creates a label that renders with the given font. The zero Config
// gives the defaults: 0.6s duration, 0.026s per-character delay, the "scale"
// effect, quintic ease-out.
func NewLabel(font *TTFFont, cfg Config) *Label {
	if font == nil {
		panic("morph: NewLabel requires a font")
	}
	return &Label{
		Color:  ColorWhite,
		Config: cfg,
		font:   font,
	}
}

// provider returns the configured layout provider, or one backed by the
// label's font.
func (l *Label) provider() LayoutProvider {
	if l.Provider != nil {
		return l.Provider
	}
	return &GoTextLayout{Font: l.font, Align: l.Align}
}

// SetText starts a morph from the label's current text to s. When a morph is
// already running it is superseded: the replacement starts from the previous
// target text, not from the mid-flight frame, and the superseded session is
// dropped without completing. Setting the current text again is a no-op.
func (l *Label) SetText(s string) {
	if s == l.text {
		return
	}

	newChars := Chars(s)
	newLayouts := l.provider().Layout(newChars, l.Size)

	if l.hasDrawn {
		l.prevColor = l.drawnColor
	} else {
		l.prevColor = l.Color
	}

	sess := NewSession(Transition{
		Old:       l.chars,
		New:       newChars,
		OldLayout: l.layouts,
		NewLayout: newLayouts,
		FontSize:  l.font.Size(),
	}, l.Config)
	sess.OnStart = func() {
		if l.OnMorphStart != nil {
			l.OnMorphStart()
		}
	}
	sess.OnProgress = func(p float64) {
		if l.OnMorphProgress != nil {
			l.OnMorphProgress(p)
		}
	}
	sess.OnComplete = func() {
		if l.OnMorphComplete != nil {
			l.OnMorphComplete()
		}
	}

	l.text = s
	l.chars = newChars
	l.layouts = newLayouts
	l.session = sess
}

// SetTextNow replaces the label's text without animating.
func (l *Label) SetTextNow(s string) {
	l.text = s
	l.chars = Chars(s)
	l.layouts = l.provider().Layout(l.chars, l.Size)
	l.session = nil
	l.prevColor = l.Color
}

// Text returns the label's target text.
func (l *Label) Text() string {
	return l.text
}

// Session returns the label's current morph session, or nil when none has
// started. The session survives completion until the next SetText.
func (l *Label) Session() *Session {
	return l.session
}

// Morphing reports whether a morph is running.
func (l *Label) Morphing() bool {
	return l.session != nil && l.session.State() == StateRunning
}

// Update advances the label's morph by one frame. Call it from your game's
// Update. It reports whether the label changed visually this frame.
func (l *Label) Update() bool {
	if l.session == nil || l.session.State() != StateRunning {
		return false
	}
	return l.session.Tick(1.0 / float64(ebiten.TPS()))
}

// displayColor is the tint for the current frame. Mid-morph it blends from
// the color the label was drawn with when the morph began.
func (l *Label) displayColor() Color {
	if l.session != nil && l.session.State() == StateRunning {
		return BlendColor(l.prevColor, l.Color, clamp(l.session.Progress(), 0, 1))
	}
	return l.Color
}

// Draw renders the label. Mid-morph it paints each limbo character
// individually; otherwise it draws the whole text in one call.
func (l *Label) Draw(dst *ebiten.Image) {
	col := l.displayColor()
	l.drawnColor = col
	l.hasDrawn = true

	if l.session == nil || l.session.State() != StateRunning {
		l.drawStatic(dst, col)
		return
	}

	draw := l.session.effect.Draw
	for _, lb := range l.session.Limbo() {
		if draw != nil && draw(dst, lb) {
			continue
		}
		l.drawChar(dst, lb, col)
	}
}

// drawStatic draws the whole target text with Ebitengine's text package.
func (l *Label) drawStatic(dst *ebiten.Image, col Color) {
	if l.text == "" {
		return
	}
	op := &l.drawOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.LineSpacing = l.font.lh
	op.PrimaryAlign = text.AlignStart

	x := l.X
	if l.Size.X > 0 {
		switch l.Align {
		case TextAlignCenter:
			x += l.Size.X / 2
			op.PrimaryAlign = text.AlignCenter
		case TextAlignRight:
			x += l.Size.X
			op.PrimaryAlign = text.AlignEnd
		}
	}
	op.GeoM.Translate(x, l.Y)
	a := float32(col.A)
	op.ColorScale.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
	text.Draw(dst, l.text, l.font.face, op)
}

// drawChar paints one limbo character, scaled about its own top-left corner.
func (l *Label) drawChar(dst *ebiten.Image, lb CharLimbo, col Color) {
	if lb.Alpha <= 0 || lb.Char == "" || lb.Char == "\n" {
		return
	}
	op := &l.drawOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.LineSpacing = 0
	op.PrimaryAlign = text.AlignStart

	if fs := l.font.Size(); fs > 0 && lb.Size != fs {
		sc := lb.Size / fs
		op.GeoM.Scale(sc, sc)
	}
	op.GeoM.Translate(l.X+lb.Rect.X, l.Y+lb.LineOffset+lb.Rect.Y)
	a := float32(col.A) * float32(clamp(lb.Alpha, 0, 1))
	op.ColorScale.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
	text.Draw(dst, lb.Char, l.font.face, op)
}

// Bounds returns the rectangle the label's target text occupies, including
// any alignment shift inside Size.
func (l *Label) Bounds() Rect {
	w, h := l.font.MeasureString(l.text)
	return Rect{X: l.X + alignOffset(l.Align, l.Size.X, w), Y: l.Y, Width: w, Height: h}
}
