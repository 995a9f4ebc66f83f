package highlight

import (
	"slices"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/go-drift/motion/pkg/animate"
	"github.com/go-drift/motion/pkg/graphics"
)

// maxEntries caps how many entries participate in animation, fixing
// the component count at the type level. Instances shorter than the cap
// pad with no-op components; entries beyond it render normally but do
// not blend. Chroma styles stay well under this in practice.
const maxEntries = 150

// entryComponents is the per-entry component count: two colors of four
// channels each.
var entryComponents = Entry{}.Components()

// Theme is a token-style table for syntax highlighting.
//
// Entries are kept sorted by token type so the component order, which
// is the wire format between Distance and ApplyDeltas, is deterministic
// for a given theme.
type Theme struct {
	Name    string
	Entries []Entry
}

// FromChroma converts a chroma style into a Theme. Styles are resolved
// with chroma's own inheritance so every listed token type carries its
// effective colors.
func FromChroma(name string, style *chroma.Style) *Theme {
	types := style.Types()
	slices.Sort(types)

	entries := make([]Entry, 0, len(types))
	for _, tt := range types {
		entries = append(entries, Entry{Token: tt, Style: entryStyle(style.Get(tt))})
	}
	return &Theme{Name: name, Entries: entries}
}

// entryStyle converts a resolved chroma style entry. Unset colors map
// to transparent, meaning "leave the host's color unchanged".
func entryStyle(se chroma.StyleEntry) Style {
	return Style{
		Foreground: chromaColor(se.Colour),
		Background: chromaColor(se.Background),
		Bold:       se.Bold == chroma.Yes,
		Italic:     se.Italic == chroma.Yes,
		Underline:  se.Underline == chroma.Yes,
	}
}

func chromaColor(c chroma.Colour) graphics.Color {
	if !c.IsSet() {
		return graphics.ColorTransparent
	}
	return graphics.RGB(c.Red(), c.Green(), c.Blue())
}

// StyleFor returns the effective style for a token type, walking up the
// chroma token hierarchy until an entry matches. The second result is
// false when no entry applies.
func (t *Theme) StyleFor(tok chroma.TokenType) (Style, bool) {
	for tok != 0 {
		for _, e := range t.Entries {
			if e.Token == tok {
				return e.Style, true
			}
		}
		tok = tok.Parent()
	}
	for _, e := range t.Entries {
		if e.Token == chroma.Background {
			return e.Style, true
		}
	}
	return Style{}, false
}

// Background returns the theme's background style, or a zero style if
// none is declared.
func (t *Theme) Background() Style {
	for _, e := range t.Entries {
		if e.Token == chroma.Background {
			return e.Style
		}
	}
	return Style{}
}

// Components returns the fixed, type-level component count: the entry
// cap times the per-entry count, independent of how many entries a
// particular theme holds.
func (t Theme) Components() int {
	return maxEntries * entryComponents
}

// animated returns how many leading entries participate in blending.
func (t Theme) animated() int {
	return min(len(t.Entries), maxEntries)
}

// Lerp blends entries positionally over the overlapping prefix of the
// two themes. Entries beyond the shorter theme, or beyond the cap, keep
// the start values. The name snaps at the midpoint.
func (t Theme) Lerp(end Theme, frac float64) Theme {
	out := Theme{Name: t.Name, Entries: slices.Clone(t.Entries)}
	if frac >= 0.5 {
		out.Name = end.Name
	}
	n := min(t.animated(), end.animated())
	for i := 0; i < n; i++ {
		out.Entries[i] = t.Entries[i].Lerp(end.Entries[i], frac)
	}
	return out
}

// Distance compares the overlapping prefix and zero-pads the remainder
// to the fixed component count.
func (t Theme) Distance(end Theme) []float64 {
	out := make([]float64, 0, t.Components())
	n := min(t.animated(), end.animated())
	for i := 0; i < n; i++ {
		out = append(out, t.Entries[i].Distance(end.Entries[i])...)
	}
	return append(out, make([]float64, t.Components()-n*entryComponents)...)
}

// ApplyDeltas shifts each participating entry and skips the padded
// tail, so nested consumers stay aligned on the flat sequence.
func (t Theme) ApplyDeltas(d *animate.Deltas) Theme {
	out := Theme{Name: t.Name, Entries: slices.Clone(t.Entries)}
	n := t.animated()
	for i := 0; i < n; i++ {
		out.Entries[i] = out.Entries[i].ApplyDeltas(d)
	}
	d.Skip(t.Components() - n*entryComponents)
	return out
}

// Equal reports whether two themes have the same name and entries.
func (t Theme) Equal(end Theme) bool {
	return t.Name == end.Name && slices.Equal(t.Entries, end.Entries)
}

// Preset identifies a built-in theme resolved from chroma's style
// registry.
type Preset int

const (
	PresetMonokai Preset = iota
	PresetDracula
	PresetGitHub
	PresetSolarizedDark
	PresetNord
)

// chromaName returns the chroma registry key for the preset.
func (p Preset) chromaName() string {
	switch p {
	case PresetDracula:
		return "dracula"
	case PresetGitHub:
		return "github"
	case PresetSolarizedDark:
		return "solarized-dark"
	case PresetNord:
		return "nord"
	default:
		return "monokai"
	}
}

// String returns the preset's display name.
func (p Preset) String() string {
	switch p {
	case PresetDracula:
		return "Dracula"
	case PresetGitHub:
		return "GitHub"
	case PresetSolarizedDark:
		return "Solarized Dark"
	case PresetNord:
		return "Nord"
	default:
		return "Monokai"
	}
}

// presetThemes builds the shared preset table once, on first access.
// The themes are immutable after construction; every Selection holding
// the same preset shares the same *Theme.
var presetThemes = sync.OnceValue(func() map[Preset]*Theme {
	all := []Preset{PresetMonokai, PresetDracula, PresetGitHub, PresetSolarizedDark, PresetNord}
	out := make(map[Preset]*Theme, len(all))
	for _, p := range all {
		// styles.Get falls back to a usable default for unknown names.
		out[p] = FromChroma(p.String(), styles.Get(p.chromaName()))
	}
	return out
})

// presetTheme resolves a preset from the shared table.
func presetTheme(p Preset) *Theme {
	return presetThemes()[p]
}
