package tui

import (
	"time"

	"github.com/watchfire-io/nfwatch/internal/aggregate"
)

// SnapshotMsg carries a fresh aggregation of the log.
type SnapshotMsg struct {
	Snapshot *aggregate.Snapshot
	At       time.Time
}

// WaitingMsg signals the log does not exist yet but is inside its grace period.
type WaitingMsg struct {
	At time.Time
}

// ErrorMsg carries a fatal load error.
type ErrorMsg struct {
	Err error
}

// TickMsg is the periodic poll tick.
type TickMsg struct{}

// LogChangedMsg is sent in follow mode when the log was written.
type LogChangedMsg struct{}
