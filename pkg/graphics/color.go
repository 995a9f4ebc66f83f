// Package graphics provides the animatable value types the motion
// library ships with: colors, offsets, sizes, insets, and alignments.
//
// Every type here implements [animate.Animate] for itself, so each can
// be dropped into a Transition directly or embedded in larger composite
// values. Component orders are fixed and documented per type; they are
// the wire format between Distance and ApplyDeltas.
package graphics

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/motion/pkg/animate"
)

const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA returns the color's channel bytes.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBAF returns normalized channel values in [0, 1].
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Hex returns the color as "#RRGGBB", discarding alpha. Terminal hosts
// address colors this way.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// WithAlpha8 returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)

// Components returns 4: red, green, blue, alpha, in that order.
func (c Color) Components() int { return 4 }

// Lerp blends each channel linearly from c toward end. Channel results
// round half away from zero, so the midpoint of 0 and 255 is 128.
func (c Color) Lerp(end Color, t float64) Color {
	r1, g1, b1, a1 := c.RGBA()
	r2, g2, b2, a2 := end.RGBA()
	return RGBA8(
		lerpByte(r1, r2, t),
		lerpByte(g1, g2, t),
		lerpByte(b1, b2, t),
		lerpByte(a1, a2, t),
	)
}

// LerpLab blends toward end in CIE-Lab space, which keeps perceived
// lightness steady through the middle of a crossfade. Alpha still
// interpolates linearly. Use this for large hue changes where linear
// RGB produces muddy midpoints.
func (c Color) LerpLab(end Color, t float64) Color {
	r1, g1, b1, a1 := c.RGBA()
	r2, g2, b2, a2 := end.RGBA()
	from := colorful.Color{R: float64(r1) / maxByte, G: float64(g1) / maxByte, B: float64(b1) / maxByte}
	to := colorful.Color{R: float64(r2) / maxByte, G: float64(g2) / maxByte, B: float64(b2) / maxByte}
	blended := from.BlendLab(to, t).Clamped()
	return RGBA8(
		uint8(math.Round(blended.R*maxByte)),
		uint8(math.Round(blended.G*maxByte)),
		uint8(math.Round(blended.B*maxByte)),
		lerpByte(a1, a2, t),
	)
}

// Distance returns the normalized channel deltas end-c, each in [-1, 1].
func (c Color) Distance(end Color) []float64 {
	r1, g1, b1, a1 := c.RGBAF()
	r2, g2, b2, a2 := end.RGBAF()
	return []float64{r2 - r1, g2 - g1, b2 - b1, a2 - a1}
}

// ApplyDeltas shifts each channel by a consumed normalized delta,
// clamping to the valid range.
func (c Color) ApplyDeltas(d *animate.Deltas) Color {
	r, g, b, a := c.RGBAF()
	return RGBA8(
		normByte(r+d.Next()),
		normByte(g+d.Next()),
		normByte(b+d.Next()),
		normByte(a+d.Next()),
	)
}

// Equal reports exact equality.
func (c Color) Equal(end Color) bool { return c == end }

// lerpByte interpolates one channel byte, rounding half away from zero.
func lerpByte(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(clampRange(v, 0, maxByte)))
}

// normByte converts a normalized channel value to a byte, clamping
// rather than letting overflow wrap.
func normByte(v float64) uint8 {
	return uint8(math.Round(clampRange(v, 0, 1) * maxByte))
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
