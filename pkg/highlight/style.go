// Package highlight adapts syntax-highlighting themes to the animation
// layer.
//
// Themes decompose into the color channels of their token styles, so
// transitioning between two named presets produces a smoothly blended
// custom theme at every frame. The syntax parsing itself is delegated
// to chroma, consumed as a black box; this package only maps token
// types to animatable styles and caches per-line results.
package highlight

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/go-drift/motion/pkg/animate"
	"github.com/go-drift/motion/pkg/graphics"
)

// Style is the animatable rendering style of one token kind.
//
// Colors animate channel-wise; a transparent color means "leave the
// host's color unchanged". The font flags carry no scalar degrees of
// freedom, so a blend snaps them to the end value once it crosses the
// midpoint.
type Style struct {
	Foreground graphics.Color
	Background graphics.Color
	Bold       bool
	Italic     bool
	Underline  bool
}

// Components returns the two color channel counts. Font flags are not
// components.
func (s Style) Components() int {
	return s.Foreground.Components() + s.Background.Components()
}

// Lerp blends both colors from s toward end; font flags snap at the
// midpoint.
func (s Style) Lerp(end Style, t float64) Style {
	out := Style{
		Foreground: s.Foreground.Lerp(end.Foreground, t),
		Background: s.Background.Lerp(end.Background, t),
		Bold:       s.Bold,
		Italic:     s.Italic,
		Underline:  s.Underline,
	}
	if t >= 0.5 {
		out.Bold = end.Bold
		out.Italic = end.Italic
		out.Underline = end.Underline
	}
	return out
}

// Distance returns the foreground deltas followed by the background
// deltas.
func (s Style) Distance(end Style) []float64 {
	return append(s.Foreground.Distance(end.Foreground), s.Background.Distance(end.Background)...)
}

// ApplyDeltas shifts the foreground, then the background.
func (s Style) ApplyDeltas(d *animate.Deltas) Style {
	out := s
	out.Foreground = s.Foreground.ApplyDeltas(d)
	out.Background = s.Background.ApplyDeltas(d)
	return out
}

// Equal reports exact equality of colors and flags.
func (s Style) Equal(end Style) bool { return s == end }

// Entry binds a chroma token type to its style within a theme.
type Entry struct {
	Token chroma.TokenType
	Style Style
}

// Components returns the style's component count; the token type is
// structural, not animatable.
func (e Entry) Components() int { return e.Style.Components() }

// Lerp blends the style. The token type of the start entry is kept, so
// positional blending between themes never reassigns scopes.
func (e Entry) Lerp(end Entry, t float64) Entry {
	return Entry{Token: e.Token, Style: e.Style.Lerp(end.Style, t)}
}

// Distance returns the style deltas.
func (e Entry) Distance(end Entry) []float64 {
	return e.Style.Distance(end.Style)
}

// ApplyDeltas shifts the style.
func (e Entry) ApplyDeltas(d *animate.Deltas) Entry {
	return Entry{Token: e.Token, Style: e.Style.ApplyDeltas(d)}
}

// Equal reports exact equality.
func (e Entry) Equal(end Entry) bool { return e == end }
