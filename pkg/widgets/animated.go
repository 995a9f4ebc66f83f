// Package widgets adapts transitions to host UI frameworks.
//
// The adapters here are deliberately host-agnostic: the only contract a
// host provides is an invalidate callback that requests a redraw frame.
// On each frame the host steps its animated values (directly or through
// the transition frame driver) and rebuilds from their current values.
package widgets

import (
	"time"

	"github.com/go-drift/motion/pkg/animate"
	"github.com/go-drift/motion/pkg/transition"
)

// Animated wraps a transition with its easing configuration and a host
// invalidation hook. It is the enforcement point for the easing's
// Reversible flag: the core transition always reverses when a retarget
// matches the opposite endpoint mid-flight, while Animated starts a
// fresh forward motion instead when reversal is disabled.
type Animated[T animate.Animate[T]] struct {
	tr     *transition.Transition[T]
	easing transition.Easing

	// invalidate asks the host for another redraw frame. May be nil
	// for tests and headless use.
	invalidate func()

	// OnEnd fires once each time the transition reaches its target.
	OnEnd func()

	wasAnimating bool
}

// NewAnimated creates an animated value at rest.
func NewAnimated[T animate.Animate[T]](value T, easing transition.Easing, invalidate func()) *Animated[T] {
	return &Animated[T]{
		tr:         transition.NewWithEasing(value, easing),
		easing:     easing,
		invalidate: invalidate,
	}
}

// Value returns the current interpolated value.
func (a *Animated[T]) Value() T { return a.tr.Value() }

// Target returns the value the animation is moving toward.
func (a *Animated[T]) Target() T { return a.tr.Target() }

// IsAnimating reports whether further frames are needed.
func (a *Animated[T]) IsAnimating() bool { return a.tr.IsAnimating() }

// Easing returns the easing configuration.
func (a *Animated[T]) Easing() transition.Easing { return a.easing }

// Transition exposes the underlying transition for hosts that drive it
// through events directly.
func (a *Animated[T]) Transition() *transition.Transition[T] { return a.tr }

// Set retargets the animation.
//
// With a reversible easing this defers to the transition's interrupt
// semantics, so moving back to where the motion started retraces the
// curve. Otherwise any change of target starts a fresh forward motion
// from the current value.
func (a *Animated[T]) Set(target T) {
	if a.easing.Reversible {
		a.tr.Interrupt(target)
	} else if !target.Equal(a.tr.Target()) {
		a.tr.Restart(target)
	}
	a.requestFrame()
}

// Tick advances the animation to the given frame timestamp and requests
// another frame while motion continues. Animated satisfies
// [transition.Ticker], so it can be registered with the frame driver.
func (a *Animated[T]) Tick(now time.Time) {
	a.tr.Tick(now)
	if a.tr.IsAnimating() {
		a.requestFrame()
	} else if a.wasAnimating && a.OnEnd != nil {
		a.OnEnd()
	}
	a.wasAnimating = a.tr.IsAnimating()
}

// Settle jumps the animation to its target immediately. Used when a
// host disables transitions or tears a view down.
func (a *Animated[T]) Settle() {
	a.tr.Settle()
	a.wasAnimating = false
	a.requestFrame()
}

func (a *Animated[T]) requestFrame() {
	if a.invalidate != nil && a.tr.IsAnimating() {
		a.invalidate()
	}
}

// Builder pairs an animated value with a render callback, producing a
// host element from the current value on every build. E is the host's
// element type; the builder never inspects it.
type Builder[T animate.Animate[T], E any] struct {
	*Animated[T]
	view func(T) E
}

// NewBuilder creates a builder animating value and rendering through
// view.
func NewBuilder[T animate.Animate[T], E any](value T, easing transition.Easing, invalidate func(), view func(T) E) *Builder[T, E] {
	return &Builder[T, E]{
		Animated: NewAnimated(value, easing, invalidate),
		view:     view,
	}
}

// View renders the host element for the current value.
func (b *Builder[T, E]) View() E {
	return b.view(b.Value())
}
