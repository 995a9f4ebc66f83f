package transition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/animate"
	"github.com/go-drift/motion/pkg/transition"
)

// manualClock is a hand-advanced clock for deterministic transitions.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

// installClock replaces the package clock for the duration of a test.
func installClock(t *testing.T) *manualClock {
	t.Helper()
	c := &manualClock{now: time.Unix(1_700_000_000, 0)}
	prev := transition.SetClock(c)
	t.Cleanup(func() { transition.SetClock(prev) })
	return c
}

func newLinear(value float64, clock *manualClock) *transition.Transition[animate.Float] {
	return transition.New(animate.Float(value)).
		WithCurve(transition.Linear).
		WithDuration(500 * time.Millisecond)
}

func TestTransition_StartsAtRest(t *testing.T) {
	installClock(t)
	tr := transition.New(animate.Float(50))

	assert.False(t, tr.IsAnimating())
	assert.Equal(t, animate.Float(50), tr.Value())
	assert.Equal(t, animate.Float(50), tr.Target())
}

func TestTransition_LinearScenario(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	require.True(t, tr.IsAnimating())

	tr.Tick(start.Add(250 * time.Millisecond))
	assert.InDelta(t, 50, float64(tr.Value()), 1e-9)
	assert.True(t, tr.IsAnimating())

	tr.Tick(start.Add(500 * time.Millisecond))
	assert.Equal(t, animate.Float(100), tr.Value(), "completion must snap exactly to the target")
	assert.False(t, tr.IsAnimating())
}

func TestTransition_CompletionExactWithOvershoot(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	tr.Tick(start.Add(3 * time.Second))

	assert.Equal(t, animate.Float(100), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_TickAtRestIsNoop(t *testing.T) {
	clock := installClock(t)
	tr := newLinear(42, clock)

	tr.Tick(clock.now.Add(10 * time.Second))

	assert.Equal(t, animate.Float(42), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_ReversalScenario(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	clock.now = start.Add(250 * time.Millisecond)
	tr.Tick(clock.now)
	require.InDelta(t, 50, float64(tr.Value()), 1e-9)

	// Retargeting back to the initial value mid-flight reverses
	// instead of restarting: the value continues from where it is.
	tr.Interrupt(animate.Float(0))
	assert.InDelta(t, 50, float64(tr.Value()), 1e-9)
	assert.Equal(t, animate.Float(0), tr.Target())
	assert.True(t, tr.IsAnimating())

	// 250ms of reverse travel brings it home, exactly.
	tr.Tick(start.Add(500 * time.Millisecond))
	assert.Equal(t, animate.Float(0), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_DoubleReversalContinues(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	clock.now = start.Add(250 * time.Millisecond)
	tr.Tick(clock.now)

	tr.Interrupt(animate.Float(0)) // reverse
	tr.Interrupt(animate.Float(100)) // reverse again

	assert.Equal(t, animate.Float(100), tr.Target())
	tr.Tick(start.Add(500 * time.Millisecond))
	assert.Equal(t, animate.Float(100), tr.Value())
}

func TestTransition_RetargetToCurrentTargetIsIdempotent(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	clock.now = start.Add(250 * time.Millisecond)
	tr.Tick(clock.now)
	midValue := tr.Value()

	tr.Interrupt(animate.Float(100))

	assert.Equal(t, midValue, tr.Value())
	assert.True(t, tr.IsAnimating())

	// Progress was not reset: the remaining half finishes on schedule.
	tr.Tick(start.Add(500 * time.Millisecond))
	assert.Equal(t, animate.Float(100), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_NewTargetRestartsFromCurrentValue(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	clock.now = start.Add(250 * time.Millisecond)
	tr.Tick(clock.now)

	tr.Interrupt(animate.Float(-100))

	// The current position becomes the new start; full duration ahead.
	assert.InDelta(t, 50, float64(tr.Value()), 1e-9)
	tr.Tick(start.Add(500 * time.Millisecond))
	assert.InDelta(t, -25, float64(tr.Value()), 1e-9)
	tr.Tick(start.Add(750 * time.Millisecond))
	assert.Equal(t, animate.Float(-100), tr.Value())
}

func TestTransition_IdleRetargetResetsTimestamp(t *testing.T) {
	clock := installClock(t)
	tr := newLinear(0, clock)

	// A long idle period must not be counted as elapsed animation time
	// when the transition is retargeted afterwards.
	clock.now = clock.now.Add(10 * time.Second)
	tr.Interrupt(animate.Float(100))

	tr.Tick(clock.now.Add(250 * time.Millisecond))
	assert.InDelta(t, 50, float64(tr.Value()), 1e-9)
	assert.True(t, tr.IsAnimating())
}

func TestTransition_SettleForward(t *testing.T) {
	clock := installClock(t)
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	tr.Tick(clock.now.Add(100 * time.Millisecond))
	tr.Settle()

	assert.Equal(t, animate.Float(100), tr.Value())
	assert.Equal(t, tr.Target(), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_SettleWhileReversed(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	clock.now = start.Add(250 * time.Millisecond)
	tr.Tick(clock.now)
	tr.Interrupt(animate.Float(0))

	tr.Settle()

	assert.Equal(t, animate.Float(0), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_ZeroDurationSettlesImmediately(t *testing.T) {
	clock := installClock(t)
	tr := transition.New(animate.Float(0)).WithDuration(0)

	tr.Interrupt(animate.Float(100))
	tr.Tick(clock.now.Add(time.Nanosecond))

	assert.Equal(t, animate.Float(100), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_EventDispatch(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Update(transition.TargetEvent(animate.Float(100)))
	assert.True(t, tr.IsAnimating())

	tr.Update(transition.TickEvent[animate.Float](start.Add(250 * time.Millisecond)))
	assert.InDelta(t, 50, float64(tr.Value()), 1e-9)

	tr.Update(transition.SettleEvent[animate.Float]())
	assert.Equal(t, animate.Float(100), tr.Value())
	assert.False(t, tr.IsAnimating())
}

func TestTransition_RestartIgnoresReversal(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := newLinear(0, clock)

	tr.Interrupt(animate.Float(100))
	clock.now = start.Add(250 * time.Millisecond)
	tr.Tick(clock.now)

	// Restart back to the initial value starts a fresh forward motion
	// from the current position rather than reversing.
	tr.Restart(animate.Float(0))

	assert.InDelta(t, 50, float64(tr.Value()), 1e-9)
	assert.Equal(t, animate.Float(0), tr.Target())

	// Half the new duration covers half the new distance.
	tr.Tick(start.Add(500 * time.Millisecond))
	assert.InDelta(t, 25, float64(tr.Value()), 1e-9)
}

func TestTransition_CurvedMotionStaysInRange(t *testing.T) {
	clock := installClock(t)
	start := clock.now
	tr := transition.New(animate.Float(0)).
		WithCurve(transition.EaseInOut).
		WithDuration(500 * time.Millisecond)

	tr.Interrupt(animate.Float(100))
	for i := 1; i <= 10; i++ {
		tr.Tick(start.Add(time.Duration(i) * 50 * time.Millisecond))
		v := float64(tr.Value())
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
	assert.Equal(t, animate.Float(100), tr.Value())
}
