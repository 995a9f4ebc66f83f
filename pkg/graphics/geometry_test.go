package graphics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/animate"
	"github.com/go-drift/motion/pkg/graphics"
)

func TestOffset_Lerp(t *testing.T) {
	from := graphics.Offset{X: 0, Y: 10}
	to := graphics.Offset{X: 100, Y: 50}

	assert.Equal(t, graphics.Offset{X: 50, Y: 30}, from.Lerp(to, 0.5))
	assert.Equal(t, from, from.Lerp(to, 0))
	assert.Equal(t, to, from.Lerp(to, 1))
}

func TestSize_DistanceRoundTrip(t *testing.T) {
	from := graphics.Size{Width: 50, Height: 50}
	to := graphics.Size{Width: 200, Height: 120}

	dist := from.Distance(to)
	require.Len(t, dist, from.Components())
	assert.Equal(t, to, from.ApplyDeltas(animate.NewDeltas(dist)))
}

func TestEdgeInsets_Lerp(t *testing.T) {
	from := graphics.EdgeInsetsAll(0)
	to := graphics.EdgeInsets{Left: 8, Top: 16, Right: 8, Bottom: 16}

	mid := from.Lerp(to, 0.5)
	assert.Equal(t, graphics.EdgeInsets{Left: 4, Top: 8, Right: 4, Bottom: 8}, mid)
}

func TestAlignment_Identity(t *testing.T) {
	a := graphics.Alignment{X: -1, Y: 1}

	assert.Equal(t, []float64{0, 0}, a.Distance(a))
	assert.Equal(t, a, a.Lerp(a, 0.7))
}

func TestRadius_Circular(t *testing.T) {
	r := graphics.Circular(6)
	assert.Equal(t, graphics.Radius{X: 6, Y: 6}, r)

	dist := r.Distance(graphics.Circular(12))
	assert.Equal(t, []float64{6, 6}, dist)
}
