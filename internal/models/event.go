// Package models holds the data types shared across nfwatch packages.
package models

// EventKind identifies the pipeline lifecycle point a log line records.
type EventKind int

// Lifecycle events recognised in .nextflow.log.
const (
	EventCached EventKind = iota + 1
	EventSubmitted
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventCached:
		return "cached"
	case EventSubmitted:
		return "submitted"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// LogEvent is a single classified log line.
type LogEvent struct {
	Kind EventKind
	// TaskClass is the PIPELINE:SUBWORKFLOW:PROCESS name without the
	// per-sample suffix, so all samples of a process share one key.
	TaskClass string
	// ExitCode is only set for completed tasks whose exit status parsed.
	ExitCode *int
}

// Failed reports whether the event is a completion with a nonzero exit code.
func (e LogEvent) Failed() bool {
	return e.Kind == EventCompleted && e.ExitCode != nil && *e.ExitCode != 0
}
