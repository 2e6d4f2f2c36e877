package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/nfwatch/internal/monitor"
)

func loadSnapshotCmd(source *monitor.Source) tea.Cmd {
	return func() tea.Msg {
		snap, err := source.Load()
		now := time.Now()
		if errors.Is(err, monitor.ErrWaitingForLog) {
			return WaitingMsg{At: now}
		}
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SnapshotMsg{Snapshot: snap, At: now}
	}
}

func pollTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForChangeCmd blocks until the watcher reports a write to the log.
func waitForChangeCmd(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return LogChangedMsg{}
	}
}
