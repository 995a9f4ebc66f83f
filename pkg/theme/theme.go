// Package theme provides animatable application themes.
//
// A [ColorScheme] decomposes into its color channels, so switching an
// app between presets crossfades every role color in one Transition
// instead of snapping. Custom themes load from YAML files with hex or
// named colors.
package theme

import (
	"github.com/go-drift/motion/pkg/animate"
	"github.com/go-drift/motion/pkg/graphics"
)

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns "light" or "dark".
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is the role-based color palette of a theme.
//
// Component order is field declaration order, four channels per color.
type ColorScheme struct {
	Primary      graphics.Color
	OnPrimary    graphics.Color
	Secondary    graphics.Color
	OnSecondary  graphics.Color
	Background   graphics.Color
	OnBackground graphics.Color
	Surface      graphics.Color
	OnSurface    graphics.Color
	Error        graphics.Color
	OnError      graphics.Color
}

// colors returns the scheme's fields in component order.
func (c *ColorScheme) colors() []*graphics.Color {
	return []*graphics.Color{
		&c.Primary, &c.OnPrimary,
		&c.Secondary, &c.OnSecondary,
		&c.Background, &c.OnBackground,
		&c.Surface, &c.OnSurface,
		&c.Error, &c.OnError,
	}
}

// Components returns the number of scheme colors times the channels per
// color.
func (c ColorScheme) Components() int {
	return len(c.colors()) * graphics.Color(0).Components()
}

// Lerp blends every role color from c toward end.
func (c ColorScheme) Lerp(end ColorScheme, t float64) ColorScheme {
	out := c
	dst := out.colors()
	from := c.colors()
	to := end.colors()
	for i := range dst {
		*dst[i] = from[i].Lerp(*to[i], t)
	}
	return out
}

// Distance returns the channel deltas for every role color, in order.
func (c ColorScheme) Distance(end ColorScheme) []float64 {
	from := c.colors()
	to := end.colors()
	out := make([]float64, 0, c.Components())
	for i := range from {
		out = append(out, from[i].Distance(*to[i])...)
	}
	return out
}

// ApplyDeltas shifts every role color by its consumed channel deltas.
func (c ColorScheme) ApplyDeltas(d *animate.Deltas) ColorScheme {
	out := c
	dst := out.colors()
	for i := range dst {
		*dst[i] = dst[i].ApplyDeltas(d)
	}
	return out
}

// Equal reports exact equality.
func (c ColorScheme) Equal(end ColorScheme) bool { return c == end }

// ThemeData bundles a named color scheme with its brightness.
type ThemeData struct {
	Name       string
	Brightness Brightness
	Colors     ColorScheme
}

// Components returns the color scheme's component count. Name and
// brightness carry no scalar degrees of freedom.
func (t ThemeData) Components() int { return t.Colors.Components() }

// Lerp blends the color scheme. Name and brightness snap to the end
// value once the blend crosses the midpoint.
func (t ThemeData) Lerp(end ThemeData, frac float64) ThemeData {
	out := t
	out.Colors = t.Colors.Lerp(end.Colors, frac)
	if frac >= 0.5 {
		out.Name = end.Name
		out.Brightness = end.Brightness
	}
	return out
}

// Distance returns the color scheme's channel deltas.
func (t ThemeData) Distance(end ThemeData) []float64 {
	return t.Colors.Distance(end.Colors)
}

// ApplyDeltas shifts the color scheme by its consumed deltas.
func (t ThemeData) ApplyDeltas(d *animate.Deltas) ThemeData {
	out := t
	out.Colors = t.Colors.ApplyDeltas(d)
	return out
}

// Equal reports exact equality of all fields.
func (t ThemeData) Equal(end ThemeData) bool { return t == end }

// Light returns the default light theme.
func Light() ThemeData {
	return ThemeData{
		Name:       "light",
		Brightness: BrightnessLight,
		Colors: ColorScheme{
			Primary:      graphics.RGB(0x42, 0x85, 0xF4),
			OnPrimary:    graphics.ColorWhite,
			Secondary:    graphics.RGB(0x0F, 0x9D, 0x58),
			OnSecondary:  graphics.ColorWhite,
			Background:   graphics.ColorWhite,
			OnBackground: graphics.RGB(0x20, 0x21, 0x24),
			Surface:      graphics.RGB(0xF8, 0xF9, 0xFA),
			OnSurface:    graphics.RGB(0x20, 0x21, 0x24),
			Error:        graphics.RGB(0xD9, 0x30, 0x25),
			OnError:      graphics.ColorWhite,
		},
	}
}

// Dark returns the default dark theme.
func Dark() ThemeData {
	return ThemeData{
		Name:       "dark",
		Brightness: BrightnessDark,
		Colors: ColorScheme{
			Primary:      graphics.RGB(0x8A, 0xB4, 0xF8),
			OnPrimary:    graphics.RGB(0x20, 0x21, 0x24),
			Secondary:    graphics.RGB(0x81, 0xC9, 0x95),
			OnSecondary:  graphics.RGB(0x20, 0x21, 0x24),
			Background:   graphics.RGB(0x20, 0x21, 0x24),
			OnBackground: graphics.RGB(0xE8, 0xEA, 0xED),
			Surface:      graphics.RGB(0x29, 0x2A, 0x2D),
			OnSurface:    graphics.RGB(0xE8, 0xEA, 0xED),
			Error:        graphics.RGB(0xF2, 0x8B, 0x82),
			OnError:      graphics.RGB(0x20, 0x21, 0x24),
		},
	}
}
