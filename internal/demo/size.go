package demo

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/transition"
	"github.com/go-drift/motion/pkg/widgets"
)

const (
	minBoxWidth = 10
	maxBoxWidth = 60
)

// SizeModel animates a box between sizes as the user resizes it.
type SizeModel struct {
	box     *widgets.Animated[graphics.Size]
	ticking bool
	log     zerolog.Logger
}

// NewSize builds the animated-size demo.
func NewSize(log zerolog.Logger) *SizeModel {
	easing := transition.NewEasing(transition.EaseInOut).
		WithDuration(300 * time.Millisecond).
		WithReversible(true)
	m := &SizeModel{
		box: widgets.NewAnimated(graphics.Size{Width: 20, Height: 5}, easing, nil),
		log: log,
	}
	transition.Register(m.box)
	return m
}

func (m *SizeModel) Init() tea.Cmd { return nil }

func (m *SizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			transition.Unregister(m.box)
			return m, tea.Quit
		case "+", "right":
			return m, m.adjust(10)
		case "-", "left":
			return m, m.adjust(-10)
		}
	case FrameMsg:
		cmd := StepFrame(msg)
		m.ticking = cmd != nil
		return m, cmd
	}
	return m, nil
}

// adjust retargets the box width and wakes the tick stream if idle.
func (m *SizeModel) adjust(dw float64) tea.Cmd {
	target := m.box.Target()
	target.Width = clampF(target.Width+dw, minBoxWidth, maxBoxWidth)
	target.Height = clampF(target.Width/4, 3, 12)
	m.log.Debug().Float64("width", target.Width).Msg("retarget size")
	m.box.Set(target)

	if m.box.IsAnimating() && !m.ticking {
		m.ticking = true
		return Frame()
	}
	return nil
}

func (m *SizeModel) View() string {
	size := m.box.Value()

	box := lipgloss.NewStyle().
		Width(int(size.Width)).
		Height(int(size.Height)).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(fmt.Sprintf("%.0f x %.0f", size.Width, size.Height))

	help := lipgloss.NewStyle().Faint(true).
		Render("+/- resize · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, box, "", help)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
