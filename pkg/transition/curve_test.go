package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/motion/pkg/transition"
)

func TestCurves_BoundaryValues(t *testing.T) {
	curves := map[string]transition.Curve{
		"linear":     transition.Linear,
		"ease":       transition.Ease,
		"ease-in":    transition.EaseIn,
		"ease-out":   transition.EaseOut,
		"ease-inout": transition.EaseInOut,
		"custom":     transition.CubicBezier(0.2, 0.8, 0.7, 0.1),
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, curve(0))
			assert.Equal(t, 1.0, curve(1))
			// Out-of-range inputs clamp instead of extrapolating.
			assert.Equal(t, 0.0, curve(-0.5))
			assert.Equal(t, 1.0, curve(1.5))
		})
	}
}

func TestLinear_Identity(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		assert.Equal(t, v, transition.Linear(v))
	}
}

func TestEaseInOut_Symmetric(t *testing.T) {
	// cubic-bezier(0.42, 0, 0.58, 1) is point-symmetric about the
	// center, so the midpoint maps to itself.
	assert.InDelta(t, 0.5, transition.EaseInOut(0.5), 1e-4)
}

func TestEaseIn_SlowStart(t *testing.T) {
	// An ease-in curve stays below linear progress early on.
	assert.Less(t, transition.EaseIn(0.25), 0.25)
	// And an ease-out curve stays above it.
	assert.Greater(t, transition.EaseOut(0.25), 0.25)
}

func TestCubicBezier_Monotonic(t *testing.T) {
	curve := transition.CubicBezier(0.25, 0.1, 0.25, 1.0)
	prev := curve(0)
	for i := 1; i <= 100; i++ {
		v := curve(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev, "curve must not move backwards at step %d", i)
		prev = v
	}
}
