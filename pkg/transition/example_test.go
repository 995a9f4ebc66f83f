package transition_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animate"
	"github.com/go-drift/motion/pkg/transition"
)

// This example shows a value transitioning linearly toward a new target.
func ExampleTransition() {
	start := time.Unix(0, 0)
	prev := transition.SetClock(fixedClock{start})
	defer transition.SetClock(prev)

	tr := transition.New(animate.Float(0)).
		WithCurve(transition.Linear).
		WithDuration(500 * time.Millisecond)

	tr.Interrupt(animate.Float(100))
	for ms := 100; ms <= 500; ms += 200 {
		tr.Tick(start.Add(time.Duration(ms) * time.Millisecond))
		fmt.Printf("%dms: %.0f animating=%v\n", ms, float64(tr.Value()), tr.IsAnimating())
	}

	// Output:
	// 100ms: 20 animating=true
	// 300ms: 60 animating=true
	// 500ms: 100 animating=false
}

// This example shows how the host event loop drives a transition
// through its single entry point.
func ExampleTransition_Update() {
	start := time.Unix(0, 0)
	prev := transition.SetClock(fixedClock{start})
	defer transition.SetClock(prev)

	tr := transition.New(animate.Float(0)).
		WithCurve(transition.Linear).
		WithDuration(200 * time.Millisecond)

	tr.Update(transition.TargetEvent(animate.Float(10)))
	tr.Update(transition.TickEvent[animate.Float](start.Add(100 * time.Millisecond)))
	fmt.Printf("mid: %.0f\n", float64(tr.Value()))

	tr.Update(transition.SettleEvent[animate.Float]())
	fmt.Printf("settled: %.0f animating=%v\n", float64(tr.Value()), tr.IsAnimating())

	// Output:
	// mid: 5
	// settled: 10 animating=false
}

// fixedClock pins the package clock for reproducible examples.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
