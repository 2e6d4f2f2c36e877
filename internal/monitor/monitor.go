// Package monitor runs the dashboard poll loop: read the log, aggregate,
// render, wait, repeat.
package monitor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/watchfire-io/nfwatch/internal/models"
	"github.com/watchfire-io/nfwatch/internal/render"
)

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(m *Monitor) { m.clock = c }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Monitor) { m.logger = l }
}

// Monitor owns the render loop. The Frame is the only state carried from
// one cycle to the next; snapshots are rebuilt from scratch every time.
type Monitor struct {
	settings *models.Settings
	renderer *render.Renderer
	clock    Clock
	logger   *zap.Logger

	source *Source
	frame  render.Frame
	cycles int
}

// New creates a monitor for settings that draws through renderer.
func New(settings *models.Settings, renderer *render.Renderer, opts ...Option) *Monitor {
	m := &Monitor{
		settings: settings,
		renderer: renderer,
		clock:    SystemClock(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.source = NewSource(settings.LogPath, settings.WaitForLog, m.clock)
	return m
}

// Frame returns the frame carried into the next cycle.
func (m *Monitor) Frame() render.Frame {
	return m.frame
}

// Cycles returns how many frames have been drawn.
func (m *Monitor) Cycles() int {
	return m.cycles
}

// Run draws the first frame immediately, then one frame per interval (and,
// in follow mode, after each change to the log) until ctx is done. It
// returns nil on cancellation and an error wrapping ErrLogUnavailable when
// the log cannot be read.
func (m *Monitor) Run(ctx context.Context) error {
	var changes <-chan struct{}
	if m.settings.Follow {
		w, err := NewWatcher(m.settings.LogPath, m.logger)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", m.settings.LogPath, err)
		}
		defer w.Close()
		changes = w.Changes()
	}

	m.logger.Info("monitor started",
		zap.String("log", m.settings.LogPath),
		zap.Duration("interval", m.settings.Interval),
		zap.Bool("follow", m.settings.Follow),
	)

	if err := m.cycle(); err != nil {
		return err
	}

	ticker := m.clock.NewTicker(m.settings.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("monitor stopped", zap.Int("cycles", m.cycles))
			return nil
		case <-ticker.C():
		case <-changes:
			m.logger.Debug("log changed")
		}

		if err := m.cycle(); err != nil {
			return err
		}
	}
}

// cycle performs one read-aggregate-render pass.
func (m *Monitor) cycle() error {
	header := render.Timestamp(m.clock.Now())

	snap, err := m.source.Load()
	if err != nil {
		if !errors.Is(err, ErrWaitingForLog) {
			m.logger.Error("cycle failed", zap.Error(err))
			return err
		}
		header += "  waiting for " + m.source.Path()
	}

	frame, err := m.renderer.Render(m.frame, snap, header)
	if err != nil {
		return err
	}
	m.frame = frame
	m.cycles++

	m.logger.Debug("frame rendered",
		zap.Int("classes", snap.Len()),
		zap.Int("lines", frame.Lines),
	)
	return nil
}
