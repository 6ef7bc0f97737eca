package morph

import "github.com/tanema/gween/ease"

// TimingFunc maps an elapsed progress t and a start/delta pair to an
// interpolated value over a unit duration. t may fall outside [0, 1]; the
// curve extrapolates and callers clamp upstream when clamping is wanted.
type TimingFunc func(t, b, c float64) float64

// Timing adapts a gween easing function to a TimingFunc over a unit duration.
func Timing(fn ease.TweenFunc) TimingFunc {
	return func(t, b, c float64) float64 {
		return float64(fn(float32(t), float32(b), float32(c), 1))
	}
}

// EaseOutQuint is the default timing function of the morph pipeline:
// gween's quintic ease-out, c*((t-1)^5+1)+b over a unit duration.
func EaseOutQuint(t, b, c float64) float64 {
	return float64(ease.OutQuint(float32(t), float32(b), float32(c), 1))
}
