// Package tui implements the full-screen pipeline dashboard.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/watchfire-io/nfwatch/internal/models"
	"github.com/watchfire-io/nfwatch/internal/monitor"
	"github.com/watchfire-io/nfwatch/internal/render"
)

// Options carries the presentation choices resolved by the CLI.
type Options struct {
	Color  bool
	Logger *zap.Logger
}

// Run launches the TUI and blocks until the user quits or the log becomes
// unreadable, in which case that error is returned.
func Run(settings *models.Settings, opts Options) error {
	source := monitor.NewSource(settings.LogPath, settings.WaitForLog, monitor.SystemClock())
	model := NewModel(settings, source).withOptions(opts)
	logger := model.logger

	if settings.Follow {
		w, err := monitor.NewWatcher(settings.LogPath, logger)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", settings.LogPath, err)
		}
		defer w.Close()
		model.changes = w.Changes()
	}

	logger.Info("tui started",
		zap.String("log", settings.LogPath),
		zap.Duration("interval", settings.Interval),
		zap.Bool("follow", settings.Follow),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// withOptions applies the CLI's colour and logging choices to m.
func (m Model) withOptions(opts Options) Model {
	if opts.Logger != nil {
		m.logger = opts.Logger
	}
	if !opts.Color {
		m.styles = render.PlainStyles()
	}
	return m
}
