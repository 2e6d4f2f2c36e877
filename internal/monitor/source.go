package monitor

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/watchfire-io/nfwatch/internal/aggregate"
)

var (
	// ErrLogUnavailable wraps every fatal failure to read the log.
	ErrLogUnavailable = errors.New("log unavailable")

	// ErrWaitingForLog is returned while a log that has never been read is
	// still inside its startup grace period.
	ErrWaitingForLog = errors.New("waiting for log")
)

// Source produces a fresh snapshot of the log on every Load.
//
// A log that does not exist yet is tolerated for the configured grace period
// after the source was created, as long as it has never been read. Any other
// open or read failure is fatal.
type Source struct {
	path    string
	wait    time.Duration
	clock   Clock
	started time.Time

	mu   sync.Mutex
	seen bool
}

// NewSource creates a source for the log at path.
func NewSource(path string, wait time.Duration, clock Clock) *Source {
	return &Source{
		path:    path,
		wait:    wait,
		clock:   clock,
		started: clock.Now(),
	}
}

// Path returns the log path.
func (s *Source) Path() string {
	return s.path
}

// Load re-reads the whole log.
func (s *Source) Load() (*aggregate.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := aggregate.AggregateFile(s.path)
	if err == nil {
		s.seen = true
		return snap, nil
	}

	if errors.Is(err, fs.ErrNotExist) && !s.seen && s.clock.Now().Sub(s.started) < s.wait {
		return nil, fmt.Errorf("%w: %s", ErrWaitingForLog, s.path)
	}
	return nil, fmt.Errorf("%w: %w", ErrLogUnavailable, err)
}
