package aggregate

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/nfwatch/internal/models"
)

// Snapshot maps task classes to their counters in first-appearance order.
// It is built once per scan and never mutated afterwards.
type Snapshot struct {
	keys     []string
	counters map[string]*models.Counters
}

func newSnapshot() *Snapshot {
	return &Snapshot{counters: make(map[string]*models.Counters)}
}

// counter returns the counters for class, registering it on first use.
func (s *Snapshot) counter(class string) *models.Counters {
	c, ok := s.counters[class]
	if !ok {
		c = &models.Counters{}
		s.counters[class] = c
		s.keys = append(s.keys, class)
	}
	return c
}

func (s *Snapshot) apply(ev models.LogEvent) {
	c := s.counter(ev.TaskClass)
	switch ev.Kind {
	case models.EventCached:
		// Cache hits never log a separate submission.
		c.Submitted++
		c.Completed++
	case models.EventSubmitted:
		c.Submitted++
	case models.EventCompleted:
		c.Completed++
		if ev.Failed() {
			c.Errored++
		}
	}
}

// Len returns the number of task classes.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the task classes in first-appearance order.
func (s *Snapshot) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Get returns the counters for class.
func (s *Snapshot) Get(class string) (models.Counters, bool) {
	if s == nil {
		return models.Counters{}, false
	}
	c, ok := s.counters[class]
	if !ok {
		return models.Counters{}, false
	}
	return *c, true
}

// Width returns the display width of the longest task class, 0 when empty.
func (s *Snapshot) Width() int {
	width := 0
	for _, k := range s.Keys() {
		if w := ansi.StringWidth(k); w > width {
			width = w
		}
	}
	return width
}

// Totals sums the counters of every task class.
func (s *Snapshot) Totals() models.Counters {
	var total models.Counters
	for _, k := range s.Keys() {
		total = total.Add(*s.counters[k])
	}
	return total
}

// Each calls fn for every task class in order.
func (s *Snapshot) Each(fn func(class string, c models.Counters)) {
	for _, k := range s.Keys() {
		fn(k, *s.counters[k])
	}
}
