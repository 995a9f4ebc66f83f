// Command motion runs interactive terminal demos of the animation
// library: an animated box, a theme crossfade, and a syntax-highlight
// theme transition.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/internal/demo"
)

var logPath string

func main() {
	root := &cobra.Command{
		Use:          "motion",
		Short:        "Interactive demos of the motion animation library",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logPath, "log", "",
		"write a debug log to this file (the terminal is busy drawing)")

	root.AddCommand(
		demoCommand("size", "Animate a box between sizes", demo.NewSize),
		demoCommand("theme", "Crossfade between light and dark themes", demo.NewTheme),
		demoCommand("code", "Transition between syntax highlight themes", demo.NewCode),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// demoCommand wires one demo constructor into a subcommand with the
// shared logging setup.
func demoCommand[M tea.Model](use, short string, build func(zerolog.Logger) M) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, cleanup, err := openLogger()
			if err != nil {
				return err
			}
			defer cleanup()
			return demo.Run(build(log), log)
		},
	}
}

// openLogger builds the demo logger. Without --log everything is
// discarded: stdout belongs to the alternate screen while a demo runs.
func openLogger() (zerolog.Logger, func(), error) {
	if logPath == "" {
		return zerolog.Nop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	log := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}
