package transition

import "math"

// Curve maps normalized progress in [0, 1] to eased progress in [0, 1].
//
// Curves are pure functions with no state. Every built-in curve passes
// through (0, 0) and (1, 1). Use [CubicBezier] to create custom curves
// matching CSS cubic-bezier().
type Curve func(t float64) float64

// Linear returns progress unchanged.
var Linear Curve = func(t float64) float64 { return t }

// Ease is the standard general-purpose curve. Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.42, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// CubicBezier returns an easing curve defined by the two control points
// (x1, y1) and (x2, y2) of a cubic Bézier starting at (0, 0) and ending
// at (1, 1).
//
// Cubic Béziers are parametric, not directly invertible, so the returned
// curve root-finds the parameter for a given x: Newton iteration first,
// bisection as a fallback. Both run on a fixed iteration budget and a
// fixed tolerance; on non-convergence the best estimate is returned,
// since visual easing does not need exactness.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for iter := 0; iter < 8; iter++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection guarantees a stable solution in [0, 1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for iter := 0; iter < 16; iter++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

// sampleCurve evaluates the one-dimensional Bézier polynomial with inner
// control values a and b at parameter t.
func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
