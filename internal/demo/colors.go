package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/theme"
	"github.com/go-drift/motion/pkg/transition"
	"github.com/go-drift/motion/pkg/widgets"
)

// ThemeModel crossfades the whole application palette between the light
// and dark presets instead of snapping.
type ThemeModel struct {
	current *widgets.Animated[theme.ThemeData]
	ticking bool
	log     zerolog.Logger
}

// NewTheme builds the theme-crossfade demo.
func NewTheme(log zerolog.Logger) *ThemeModel {
	easing := transition.NewEasing(transition.EaseInOut).
		WithDuration(800 * time.Millisecond).
		WithReversible(true)
	m := &ThemeModel{
		current: widgets.NewAnimated(theme.Light(), easing, nil),
		log:     log,
	}
	transition.Register(m.current)
	return m
}

func (m *ThemeModel) Init() tea.Cmd { return nil }

func (m *ThemeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			transition.Unregister(m.current)
			return m, tea.Quit
		case "t", " ":
			return m, m.toggle()
		}
	case FrameMsg:
		cmd := StepFrame(msg)
		m.ticking = cmd != nil
		return m, cmd
	}
	return m, nil
}

// toggle retargets toward the opposite preset. Mid-crossfade presses
// reverse the blend from wherever it is.
func (m *ThemeModel) toggle() tea.Cmd {
	next := theme.Light()
	if m.current.Target().Brightness == theme.BrightnessLight {
		next = theme.Dark()
	}
	m.log.Debug().Str("theme", next.Name).Msg("retarget theme")
	m.current.Set(next)

	if m.current.IsAnimating() && !m.ticking {
		m.ticking = true
		return Frame()
	}
	return nil
}

func (m *ThemeModel) View() string {
	t := m.current.Value()

	swatches := []struct {
		name   string
		fg, bg graphics.Color
	}{
		{"primary", t.Colors.OnPrimary, t.Colors.Primary},
		{"secondary", t.Colors.OnSecondary, t.Colors.Secondary},
		{"surface", t.Colors.OnSurface, t.Colors.Surface},
		{"error", t.Colors.OnError, t.Colors.Error},
	}

	rows := make([]string, 0, len(swatches))
	for _, s := range swatches {
		rows = append(rows, lipgloss.NewStyle().
			Width(24).
			Padding(0, 1).
			Foreground(lipgloss.Color(s.fg.Hex())).
			Background(lipgloss.Color(s.bg.Hex())).
			Render(s.name))
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		Foreground(lipgloss.Color(t.Colors.OnBackground.Hex())).
		Background(lipgloss.Color(t.Colors.Background.Hex())).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	help := lipgloss.NewStyle().Faint(true).
		Render("t toggle light/dark · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		"theme: "+t.Name, panel, help)
}
