package transition

import "time"

// EventKind discriminates the events a host delivers to a transition.
type EventKind int

const (
	// EventTick carries a frame timestamp; time passes.
	EventTick EventKind = iota
	// EventTarget carries a new target value; the transition retargets.
	EventTarget
	// EventSettle forces the transition to its terminal value.
	EventSettle
)

// Event is a message from the host event loop to a transition. Exactly
// one of Now or Target is meaningful, selected by Kind.
type Event[T any] struct {
	Kind   EventKind
	Now    time.Time
	Target T
}

// TickEvent returns a tick event for the given frame timestamp.
func TickEvent[T any](now time.Time) Event[T] {
	return Event[T]{Kind: EventTick, Now: now}
}

// TargetEvent returns a retargeting event carrying the new endpoint.
func TargetEvent[T any](target T) Event[T] {
	return Event[T]{Kind: EventTarget, Target: target}
}

// SettleEvent returns an event forcing immediate completion.
func SettleEvent[T any]() Event[T] {
	return Event[T]{Kind: EventSettle}
}
