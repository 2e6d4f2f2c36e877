package models

// Counters tallies lifecycle events for one task class.
type Counters struct {
	Submitted int
	Completed int
	Errored   int
}

// Expected is the denominator shown on the dashboard. Failed tasks are
// resubmitted by Nextflow, so every error adds one more expected completion.
func (c Counters) Expected() int {
	return c.Submitted + c.Errored
}

// Finished reports whether every expected task has completed.
func (c Counters) Finished() bool {
	return c.Expected() > 0 && c.Completed >= c.Expected()
}

// Add returns the field-wise sum of c and o.
func (c Counters) Add(o Counters) Counters {
	return Counters{
		Submitted: c.Submitted + o.Submitted,
		Completed: c.Completed + o.Completed,
		Errored:   c.Errored + o.Errored,
	}
}
