package morph

import "testing"

// --- Registry ---

func TestEffectByName_BuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"evaporate", "fall"} {
		e := effectByName(name)
		if e.Appear == nil || e.Disappear == nil || e.Progress == nil {
			t.Errorf("effect %q missing overrides", name)
		}
	}
}

func TestEffectByName_UnknownIsZero(t *testing.T) {
	e := effectByName("does-not-exist")
	if e.Appear != nil || e.Disappear != nil || e.Progress != nil || e.Draw != nil || e.SkipFrames != 0 {
		t.Error("unknown effect name must yield the zero effect")
	}
}

func TestRegisterEffect_Replaces(t *testing.T) {
	RegisterEffect("test-replace", Effect{SkipFrames: 1})
	RegisterEffect("test-replace", Effect{SkipFrames: 7})
	if got := effectByName("test-replace").SkipFrames; got != 7 {
		t.Errorf("SkipFrames = %d, want the replacement's 7", got)
	}
}

func TestSession_KeepsEffectAcrossReplacement(t *testing.T) {
	RegisterEffect("test-pinned", Effect{SkipFrames: 3})
	s := newTestSession(t, "A", "B", Config{Effect: "test-pinned"})
	RegisterEffect("test-pinned", Effect{SkipFrames: 0})
	if s.effect.SkipFrames != 3 {
		t.Error("running session must keep the effect it started with")
	}
}

// --- CharState.Limbo ---

func TestCharState_Limbo(t *testing.T) {
	st := CharState{
		Char:       "A",
		GlyphID:    42,
		Incoming:   true,
		Progress:   0.5,
		Rect:       Rect{X: 3, Y: 4, Width: 10, Height: 20},
		LineOffset: 20,
		FontSize:   24,
	}
	l := st.Limbo()
	if l.Char != "A" || l.GlyphID != 42 || !l.Incoming {
		t.Errorf("identity fields not carried: %+v", l)
	}
	if l.Alpha != 1 || l.Size != 24 {
		t.Errorf("alpha = %f size = %f, want 1 and the font size", l.Alpha, l.Size)
	}
	if l.Rect != st.Rect || l.LineOffset != 20 || l.Progress != 0.5 {
		t.Errorf("geometry fields not carried: %+v", l)
	}
}

// --- Built-in effects ---

func TestEvaporate_DisappearDriftsUp(t *testing.T) {
	e := effectByName("evaporate")
	st := CharState{Char: "A", Progress: 0.5, FontSize: 20, Timing: EaseOutQuint}
	l := e.Disappear(st)
	if l.Rect.Y >= 0 {
		t.Errorf("y = %f, want above the resting position", l.Rect.Y)
	}
	if l.Alpha != 0.5 {
		t.Errorf("alpha = %f, want 0.5", l.Alpha)
	}
}

func TestEvaporate_AppearSettlesDown(t *testing.T) {
	e := effectByName("evaporate")
	early := e.Appear(CharState{Char: "A", Progress: 0.1, FontSize: 20, Timing: EaseOutQuint})
	late := e.Appear(CharState{Char: "A", Progress: 0.9, FontSize: 20, Timing: EaseOutQuint})
	if early.Rect.Y >= 0 {
		t.Errorf("early y = %f, want above the resting position", early.Rect.Y)
	}
	if late.Rect.Y < early.Rect.Y {
		t.Errorf("y went up over time: %f -> %f", early.Rect.Y, late.Rect.Y)
	}
	settled := e.Appear(CharState{Char: "A", Progress: 1, FontSize: 20, Timing: EaseOutQuint})
	if settled.Rect.Y != 0 || settled.Alpha != 1 {
		t.Errorf("settled = {y %f alpha %f}, want resting and opaque", settled.Rect.Y, settled.Alpha)
	}
}

func TestEvaporate_WaveStagger(t *testing.T) {
	e := effectByName("evaporate")
	// Outgoing waves by index mod 3: indexes 0, 3, 6... lead.
	p0 := e.Progress(0, 0.4, false)
	p1 := e.Progress(1, 0.4, false)
	p3 := e.Progress(3, 0.4, false)
	if p0 <= p1 {
		t.Errorf("wave 0 progress %f not ahead of wave 1 progress %f", p0, p1)
	}
	if p0 != p3 {
		t.Errorf("indexes 0 and 3 differ: %f vs %f, want same wave", p0, p3)
	}
	// Incoming waves run in reverse so the effect reads right to left.
	if in0, in2 := e.Progress(0, 0.4, true), e.Progress(2, 0.4, true); in0 >= in2 {
		t.Errorf("incoming wave order: index 0 = %f, index 2 = %f, want index 2 ahead", in0, in2)
	}
}

func TestEvaporate_ProgressReachesOne(t *testing.T) {
	e := effectByName("evaporate")
	// Every wave must saturate by global progress 1 or characters would pop
	// at completion.
	for index := 0; index < 6; index++ {
		for _, incoming := range []bool{false, true} {
			if p := e.Progress(index, 1, incoming); p != 1 {
				t.Errorf("index %d incoming %v: progress(1) = %f, want 1", index, incoming, p)
			}
		}
	}
}

func TestFall_DisappearDropsDown(t *testing.T) {
	e := effectByName("fall")
	st := CharState{Char: "A", Progress: 0.5, FontSize: 20, Timing: EaseOutQuint}
	l := e.Disappear(st)
	if l.Rect.Y <= 0 {
		t.Errorf("y = %f, want below the resting position", l.Rect.Y)
	}
	if l.Alpha != 0.5 {
		t.Errorf("alpha = %f, want 0.5", l.Alpha)
	}
}

func TestFall_AppearGrowsIntoPlace(t *testing.T) {
	e := effectByName("fall")
	settled := e.Appear(CharState{Char: "A", Progress: 1, FontSize: 20, Timing: EaseOutQuint})
	if settled.Size != 20 || settled.Rect.Y != 0 || settled.Alpha != 1 {
		t.Errorf("settled = {size %f y %f alpha %f}, want full size at rest", settled.Size, settled.Rect.Y, settled.Alpha)
	}
	early := e.Appear(CharState{Char: "A", Progress: 0.1, FontSize: 20, Timing: EaseOutQuint})
	if early.Size >= 20 {
		t.Errorf("early size = %f, want growing", early.Size)
	}
}

func TestFall_ProgressStaggerCapped(t *testing.T) {
	e := effectByName("fall")
	// The per-index stagger saturates, so very long texts still finish.
	if p10, p20 := e.Progress(10, 0.8, false), e.Progress(20, 0.8, false); p10 != p20 {
		t.Errorf("stagger not capped: index 10 = %f, index 20 = %f", p10, p20)
	}
	if p := e.Progress(50, 1, false); !approx(p, 1) {
		t.Errorf("progress(1) at high index = %f, want 1", p)
	}
}
