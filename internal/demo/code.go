package demo

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/go-drift/motion/pkg/highlight"
	"github.com/go-drift/motion/pkg/transition"
	"github.com/go-drift/motion/pkg/widgets"
)

// sampleSource is the code pane rendered by the highlight demo.
const sampleSource = `package main

import "fmt"

// greet prints a friendly message n times.
func greet(name string, n int) {
	for i := 0; i < n; i++ {
		fmt.Printf("hello, %s!\n", name)
	}
}

func main() {
	greet("motion", 3)
}
`

// codePresets is the cycle order for the theme key.
var codePresets = []highlight.Preset{
	highlight.PresetMonokai,
	highlight.PresetDracula,
	highlight.PresetGitHub,
	highlight.PresetSolarizedDark,
	highlight.PresetNord,
}

// CodeModel shows syntax-highlighted code whose color theme crossfades
// between presets. Every frame of the transition produces a blended
// custom theme, and the pane is restyled with it.
type CodeModel struct {
	selection *widgets.Animated[highlight.Selection]
	next      int
	lines     []string
	ticking   bool
	log       zerolog.Logger
}

// NewCode builds the highlight-crossfade demo.
func NewCode(log zerolog.Logger) *CodeModel {
	easing := transition.NewEasing(transition.EaseInOut).
		WithDuration(600 * time.Millisecond).
		WithReversible(false)
	m := &CodeModel{
		selection: widgets.NewAnimated(
			highlight.PresetSelection(codePresets[0]), easing, nil),
		next:  1,
		lines: strings.Split(strings.TrimRight(sampleSource, "\n"), "\n"),
		log:   log,
	}
	transition.Register(m.selection)
	return m
}

func (m *CodeModel) Init() tea.Cmd { return nil }

func (m *CodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			transition.Unregister(m.selection)
			return m, tea.Quit
		case "t", " ":
			return m, m.cycle()
		}
	case FrameMsg:
		cmd := StepFrame(msg)
		m.ticking = cmd != nil
		return m, cmd
	}
	return m, nil
}

// cycle retargets the selection toward the next preset in order.
func (m *CodeModel) cycle() tea.Cmd {
	preset := codePresets[m.next]
	m.next = (m.next + 1) % len(codePresets)
	m.log.Debug().Stringer("preset", preset).Msg("retarget highlight theme")
	m.selection.Set(highlight.PresetSelection(preset))

	if m.selection.IsAnimating() && !m.ticking {
		m.ticking = true
		return Frame()
	}
	return nil
}

func (m *CodeModel) View() string {
	selection := m.selection.Value()
	h := highlight.New(highlight.Settings{Theme: selection, Language: "go"})
	background := selection.Theme().Background()

	rendered := make([]string, 0, len(m.lines))
	for _, line := range m.lines {
		rendered = append(rendered, renderSpans(line, h.HighlightLine(line)))
	}

	pane := lipgloss.NewStyle().
		Padding(1, 2).
		Background(lipgloss.Color(background.Background.Hex())).
		Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))

	help := lipgloss.NewStyle().Faint(true).
		Render("t next theme · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		"theme: "+m.selection.Target().String(), pane, help)
}

// renderSpans paints one line of text span by span.
func renderSpans(line string, spans []highlight.Span) string {
	var b strings.Builder
	for _, span := range spans {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(span.Style.Foreground.Hex())).
			Background(lipgloss.Color(span.Style.Background.Hex())).
			Bold(span.Style.Bold).
			Italic(span.Style.Italic).
			Underline(span.Style.Underline)
		b.WriteString(style.Render(line[span.Start:span.End]))
	}
	return b.String()
}
