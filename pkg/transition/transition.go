// Package transition implements the state machine that moves a value
// from an initial point to a target point over wall-clock time.
//
// A [Transition] owns a value of any type implementing
// [animate.Animate], an easing [Curve], and a duration. The host event
// loop drives it through [Transition.Update] with tick, target, and
// settle events; between events the host reads [Transition.Value] to
// render and [Transition.IsAnimating] to decide whether to schedule
// another frame.
//
// Retargeting an in-flight transition either reverses it (when the new
// target is the endpoint it came from, so motion retraces the same
// curve) or restarts it from the current position. Either way the value
// never jumps.
package transition

import (
	"time"

	"github.com/go-drift/motion/pkg/animate"
)

// Transition animates one value from an initial point toward a target
// point over time.
//
// The current value always equals the curve-blended point between
// initial and target for the current progress, or exactly one of the
// endpoints once the transition completes. Completion snaps the value to
// the logical target so no floating-point residue survives.
type Transition[T animate.Animate[T]] struct {
	// initial is the starting point of the current motion.
	initial T
	// value is the current interpolated value.
	value T
	// target is the end point of the current motion.
	target T

	curve      Curve
	duration   time.Duration
	progress   Progress
	lastUpdate time.Time
}

// New creates a transition at rest holding the given value, with the
// Ease curve and the default duration. It does not animate until
// retargeted.
func New[T animate.Animate[T]](value T) *Transition[T] {
	return &Transition[T]{
		initial:    value,
		value:      value,
		target:     value,
		curve:      Ease,
		duration:   DefaultDuration,
		progress:   Rest(),
		lastUpdate: Now(),
	}
}

// NewWithEasing creates a transition at rest configured from an easing.
func NewWithEasing[T animate.Animate[T]](value T, easing Easing) *Transition[T] {
	return New(value).WithCurve(easing.Curve).WithDuration(easing.Duration)
}

// WithCurve sets the curve and returns the transition.
func (tr *Transition[T]) WithCurve(curve Curve) *Transition[T] {
	if curve != nil {
		tr.curve = curve
	}
	return tr
}

// WithDuration sets the duration and returns the transition.
func (tr *Transition[T]) WithDuration(d time.Duration) *Transition[T] {
	tr.duration = d
	return tr
}

// SetDuration sets how long the transition takes to complete.
func (tr *Transition[T]) SetDuration(d time.Duration) {
	tr.duration = d
}

// Duration returns how long the transition takes to complete.
func (tr *Transition[T]) Duration() time.Duration {
	return tr.duration
}

// Value returns the current interpolated value.
func (tr *Transition[T]) Value() T {
	return tr.value
}

// Target returns the value the transition is logically moving toward:
// the target when forward, the initial value when reversed.
func (tr *Transition[T]) Target() T {
	if tr.progress.Direction() == Reverse {
		return tr.initial
	}
	return tr.target
}

// Progress returns the current progress.
func (tr *Transition[T]) Progress() Progress {
	return tr.progress
}

// IsAnimating reports whether the transition still needs ticks to reach
// its target.
func (tr *Transition[T]) IsAnimating() bool {
	return !tr.progress.IsComplete()
}

// Update dispatches a host event. This is the single entry point the
// external driver calls.
func (tr *Transition[T]) Update(ev Event[T]) {
	switch ev.Kind {
	case EventTick:
		tr.Tick(ev.Now)
	case EventTarget:
		tr.Interrupt(ev.Target)
	case EventSettle:
		tr.Settle()
	}
}

// Tick advances the transition by the wall-clock time elapsed since the
// last update. It is a no-op at rest.
func (tr *Transition[T]) Tick(now time.Time) {
	if !tr.IsAnimating() {
		return
	}

	delta := now.Sub(tr.lastUpdate)
	tr.lastUpdate = now

	// A zero-length duration cannot be divided by; treat the transition
	// as instantaneous.
	if tr.duration <= 0 {
		tr.Settle()
		return
	}

	tr.progress.Update(delta.Seconds() / tr.duration.Seconds())
	if tr.progress.IsComplete() {
		// Snap exactly to the logical target so no interpolation
		// residue survives completion.
		tr.value = tr.Target()
	} else {
		tr.value = tr.initial.Lerp(tr.target, tr.curve(tr.progress.Value()))
	}
}

// Interrupt retargets the transition.
//
// If the new target equals the endpoint the current motion came from and
// the transition is still in flight, the motion reverses, retracing the
// same curve from the current position. If the new target differs from
// the logical target, the transition restarts forward from the current
// value. Retargeting to the current logical target changes nothing.
func (tr *Transition[T]) Interrupt(target T) {
	// Reset the timestamp when idle so the elapsed time accumulated
	// while resting is not applied on the next tick. In-flight
	// interrupts keep the timestamp, or continuously interrupted
	// transitions would never advance.
	if !tr.IsAnimating() {
		tr.lastUpdate = Now()
	}

	var towardStart bool
	if tr.progress.Direction() == Forward {
		towardStart = target.Equal(tr.initial)
	} else {
		towardStart = target.Equal(tr.target)
	}

	if towardStart && !tr.progress.IsComplete() {
		tr.Reverse()
	} else if !target.Equal(tr.Target()) {
		tr.progress = Start()
		tr.initial = tr.value
		tr.target = target
	}

	tr.lastUpdate = Now()
}

// Restart unconditionally begins a fresh forward motion from the current
// value toward the given target, even when a reversal would apply. The
// widget adapter uses this when an easing is not reversible.
func (tr *Transition[T]) Restart(target T) {
	tr.progress = Start()
	tr.initial = tr.value
	tr.target = target
	tr.lastUpdate = Now()
}

// Reverse flips the direction of motion in place. The endpoint fields
// are not swapped; the direction flip combined with the conditional
// Target accessor produces the reversed semantics.
func (tr *Transition[T]) Reverse() {
	tr.progress.Reverse()
}

// Settle ends the transition immediately, snapping the value to the
// logical target for the current direction.
func (tr *Transition[T]) Settle() {
	tr.progress.Settle()
	tr.value = tr.Target()
}
