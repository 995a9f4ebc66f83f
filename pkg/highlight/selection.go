package highlight

import "github.com/go-drift/motion/pkg/animate"

// Selection names the theme a highlighter should use: either a built-in
// preset, cheaply resolved from the shared table, or a custom theme held
// through a shared immutable pointer. Multiple widgets may reference the
// same custom theme; it lives as long as its longest holder.
//
// Selection implements the animate capability, so transitioning between
// two presets yields a blended custom theme at every intermediate frame.
type Selection struct {
	preset Preset
	custom *Theme
}

// PresetSelection selects a built-in theme.
func PresetSelection(p Preset) Selection {
	return Selection{preset: p}
}

// CustomSelection selects an externally built theme. The theme must not
// be mutated after this call; it may be shared across selections.
func CustomSelection(t *Theme) Selection {
	return Selection{custom: t}
}

// IsCustom reports whether the selection holds a custom theme.
func (s Selection) IsCustom() bool { return s.custom != nil }

// Theme resolves the selection to its theme table.
func (s Selection) Theme() *Theme {
	if s.custom != nil {
		return s.custom
	}
	return presetTheme(s.preset)
}

// String returns the display name of the selected theme.
func (s Selection) String() string {
	if s.custom != nil {
		return s.custom.Name
	}
	return s.preset.String()
}

// Components returns the theme component count, fixed at the type
// level regardless of which theme is selected.
func (s Selection) Components() int {
	return Theme{}.Components()
}

// Lerp resolves both selections and blends their themes; the result is
// always a custom selection holding the blended table.
func (s Selection) Lerp(end Selection, t float64) Selection {
	blended := s.Theme().Lerp(*end.Theme(), t)
	return CustomSelection(&blended)
}

// Distance resolves both selections and measures their themes.
func (s Selection) Distance(end Selection) []float64 {
	return s.Theme().Distance(*end.Theme())
}

// ApplyDeltas resolves the selection, shifts the theme, and returns the
// result as a custom selection.
func (s Selection) ApplyDeltas(d *animate.Deltas) Selection {
	shifted := s.Theme().ApplyDeltas(d)
	return CustomSelection(&shifted)
}

// Equal reports whether two selections resolve to the same theme:
// matching presets, the same custom pointer, or custom themes with
// identical contents.
func (s Selection) Equal(end Selection) bool {
	if s.custom == nil && end.custom == nil {
		return s.preset == end.preset
	}
	if s.custom != nil && end.custom != nil {
		return s.custom == end.custom || s.custom.Equal(*end.custom)
	}
	return s.Theme().Equal(*end.Theme())
}
