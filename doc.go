// Package morph animates text changes character by character for
// [Ebitengine].
//
// When a text changes, morph classifies every character of the old and new
// texts (kept, moved, replaced, added, deleted), then renders the frames in
// between: kept characters slide to their new positions while the rest
// shrink away and grow in, staggered by character index. The result is the
// rolling, typewriter-like transition familiar from flip-board displays.
//
// # Quick start
//
// [Label] is the drop-in element. Give it a font, call [Label.SetText]
// whenever the text changes, and tick it from your game loop:
//
//	font, _ := morph.LoadTTFFont(ttfData, 24)
//	label := morph.NewLabel(font, morph.Config{})
//	label.X, label.Y = 40, 60
//	label.SetText("HELLO")
//
//	type Game struct{ label *morph.Label }
//
//	func (g *Game) Update() error         { g.label.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.label.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Sessions
//
// [Label] is a convenience wrapper around [Session], the engine itself. A
// session takes two texts with their per-character geometry (a [Transition]),
// advances one frame per [Session.Tick], and reports the transient state of
// every character via [Session.Limbo]. Geometry comes from a
// [LayoutProvider]; [GoTextLayout] measures TrueType fonts via Ebitengine's
// text/v2 and [BitmapLayout] measures BMFont data, but any implementation
// that can measure characters works. The terminal example drives whole
// sessions from a character grid without touching Ebitengine at all.
//
// # Effects
//
// The transition style is pluggable. "scale" (the default), "evaporate", and
// "fall" ship built in; [RegisterEffect] installs custom [Effect] strategies
// that can override any phase of the animation, including taking over
// drawing entirely.
//
// [Ebitengine]: https://ebitengine.org
package morph
