// Package aggregate folds a full pass over .nextflow.log into per-task-class
// counters. Every scan starts from zero; nothing carries between scans.
package aggregate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/watchfire-io/nfwatch/internal/classify"
)

// Aggregate classifies every line read from r and returns the resulting
// snapshot. Lines of any length are accepted.
func Aggregate(r io.Reader) (*Snapshot, error) {
	snap := newSnapshot()
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if ev, ok := classify.Classify(strings.TrimRight(line, "\r\n")); ok {
				snap.apply(ev)
			}
		}
		if errors.Is(err, io.EOF) {
			return snap, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read log: %w", err)
		}
	}
}

// AggregateFile opens path and aggregates its full contents. Open errors are
// returned wrapped so callers can test them with errors.Is.
func AggregateFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	defer f.Close()

	return Aggregate(f)
}
