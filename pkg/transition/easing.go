package transition

import "time"

// DefaultDuration is the duration used when none is configured.
const DefaultDuration = 500 * time.Millisecond

// Easing is an immutable configuration bundle for creating transitions:
// a curve, a duration, and whether retargeting back to the initial value
// reverses the motion instead of restarting it.
//
// Easing only parameterizes construction. The Reversible flag is
// consulted by the widget adapter (see pkg/widgets), not by the core
// state machine, which always reverses when the new target matches the
// opposite endpoint mid-flight.
type Easing struct {
	// Curve determines how the current value moves over time.
	Curve Curve
	// Duration is how long the transition takes to complete.
	Duration time.Duration
	// Reversible makes retargets back to the initial value travel the
	// curve backwards from the current position instead of restarting
	// from the beginning, e.g. 0 -> 1 -> 0 along one curve.
	Reversible bool
}

// DefaultEasing returns the standard easing: Ease curve, default
// duration, not reversible.
func DefaultEasing() Easing {
	return Easing{Curve: Ease, Duration: DefaultDuration}
}

// NewEasing returns an easing with the given curve and the default
// duration.
func NewEasing(curve Curve) Easing {
	return Easing{Curve: curve, Duration: DefaultDuration}
}

// WithCurve returns a copy with the curve replaced.
func (e Easing) WithCurve(curve Curve) Easing {
	e.Curve = curve
	return e
}

// WithDuration returns a copy with the duration replaced.
func (e Easing) WithDuration(d time.Duration) Easing {
	e.Duration = d
	return e
}

// WithReversible returns a copy with the reversible flag replaced.
func (e Easing) WithReversible(reversible bool) Easing {
	e.Reversible = reversible
	return e
}

// VeryQuick returns a copy with a 100ms duration.
func (e Easing) VeryQuick() Easing { return e.WithDuration(100 * time.Millisecond) }

// Quick returns a copy with a 200ms duration.
func (e Easing) Quick() Easing { return e.WithDuration(200 * time.Millisecond) }

// Slow returns a copy with a 400ms duration.
func (e Easing) Slow() Easing { return e.WithDuration(400 * time.Millisecond) }

// VerySlow returns a copy with a 500ms duration.
func (e Easing) VerySlow() Easing { return e.WithDuration(500 * time.Millisecond) }
