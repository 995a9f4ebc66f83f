// Package demo contains the interactive terminal demos behind the
// motion CLI. Each demo is a Bubble Tea model whose tick loop plays the
// role of the host framework event loop: it steps the frame driver once
// per frame and keeps scheduling frames only while something animates.
package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/go-drift/motion/pkg/transition"
)

// frameRate is the demo redraw rate.
const frameRate = time.Second / 60

// FrameMsg carries the timestamp of one redraw frame.
type FrameMsg time.Time

// Frame schedules the next redraw frame.
func Frame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// StepFrame advances all registered animations to the frame timestamp
// and returns the next frame command, or nil once everything is at
// rest. Stopping the tick stream while idle is the resource-saving half
// of the render contract; a later retarget starts it again.
func StepFrame(msg FrameMsg) tea.Cmd {
	transition.Step(time.Time(msg))
	if transition.HasActive() {
		return Frame()
	}
	return nil
}

// Run starts a demo model in the alternate screen.
func Run(model tea.Model, log zerolog.Logger) error {
	log.Info().Msg("starting demo")
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		log.Err(err).Msg("demo exited")
		return err
	}
	log.Info().Msg("demo finished")
	return nil
}
