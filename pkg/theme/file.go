package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/graphics"
)

// themeFile is the on-disk YAML shape of a custom theme.
type themeFile struct {
	Name       string            `yaml:"name"`
	Brightness string            `yaml:"brightness"`
	Colors     map[string]string `yaml:"colors"`
}

// LoadFile reads a custom theme from a YAML file.
//
// Colors accept #RGB, #RRGGBB, #RRGGBBAA hex forms or SVG 1.1 color
// names ("slategray"). Roles missing from the file keep the value of
// the base theme for the declared brightness, so a file only needs to
// override what it changes.
func LoadFile(path string) (ThemeData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ThemeData{}, fmt.Errorf("read theme file: %w", err)
	}
	t, err := Parse(raw)
	if err != nil {
		return ThemeData{}, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a custom theme from YAML bytes.
func Parse(raw []byte) (ThemeData, error) {
	var f themeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return ThemeData{}, fmt.Errorf("parse theme yaml: %w", err)
	}

	var t ThemeData
	switch strings.ToLower(strings.TrimSpace(f.Brightness)) {
	case "", "light":
		t = Light()
	case "dark":
		t = Dark()
	default:
		return ThemeData{}, fmt.Errorf("unknown brightness %q", f.Brightness)
	}
	if f.Name != "" {
		t.Name = f.Name
	}

	for role, value := range f.Colors {
		c, err := ParseColor(value)
		if err != nil {
			return ThemeData{}, fmt.Errorf("color %q: %w", role, err)
		}
		if err := t.Colors.setRole(role, c); err != nil {
			return ThemeData{}, err
		}
	}
	return t, nil
}

// setRole assigns a color by its YAML role name.
func (c *ColorScheme) setRole(role string, color graphics.Color) error {
	switch strings.ToLower(strings.ReplaceAll(role, "_", "-")) {
	case "primary":
		c.Primary = color
	case "on-primary":
		c.OnPrimary = color
	case "secondary":
		c.Secondary = color
	case "on-secondary":
		c.OnSecondary = color
	case "background":
		c.Background = color
	case "on-background":
		c.OnBackground = color
	case "surface":
		c.Surface = color
	case "on-surface":
		c.OnSurface = color
	case "error":
		c.Error = color
	case "on-error":
		c.OnError = color
	default:
		return fmt.Errorf("unknown color role %q", role)
	}
	return nil
}

// ParseColor parses a hex color or an SVG 1.1 color name.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return graphics.RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, fmt.Errorf("unrecognized color %q", s)
}

func parseHex(hex string) (graphics.Color, error) {
	switch len(hex) {
	case 3:
		// #RGB expands each nibble.
		var expanded strings.Builder
		for _, ch := range hex {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		hex = expanded.String()
		fallthrough
	case 6:
		hex += "FF"
		fallthrough
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color: %w", err)
		}
		return graphics.RGBA8(
			uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v),
		), nil
	default:
		return 0, fmt.Errorf("hex color must have 3, 6, or 8 digits, got %d", len(hex))
	}
}
