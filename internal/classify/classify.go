// Package classify turns raw .nextflow.log lines into lifecycle events.
//
// Nextflow names processes "PIPELINE:SUBWORKFLOW:PROCESS (meta)". The meta
// suffix is dropped so every sample of a process lands on one task class.
// Typical lines:
//
//	Jul-29 08:42:52.308 [Actor Thread 100] INFO  nextflow.processor.TaskProcessor - [fd/dc57cd] Cached process > NFCORE_TARGETASSEMBLY:TARGETASSEMBLY:BITSCOREFILTER (105603_P001_WB07)
//	Jul-29 09:52:30.084 [Task submitter] INFO  nextflow.Session - [91/076f86] Submitted process > NFCORE_TARGETASSEMBLY:TARGETASSEMBLY:CLEANHEADERS (105603_P022_WB09)
//	Jul-29 09:52:31.076 [Task monitor] DEBUG n.processor.TaskPollingMonitor - Task completed > TaskHandler[jobId: 5379053; id: 46618; name: NFCORE_TARGETASSEMBLY:TARGETASSEMBLY:CLEANHEADERS (105603_P022_WB06); status: COMPLETED; exit: 0; error: -; ...]
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/watchfire-io/nfwatch/internal/models"
)

// Marker substrings, checked in this order. A line carrying more than one
// marker is classified by the first that matches.
const (
	MarkerCached    = "Cached process"
	MarkerSubmitted = "Submitted process"
	MarkerCompleted = "Task completed"
)

var (
	// taskClassPattern matches a word:word:word token that starts after
	// whitespace and is not continued by another word, colon or dot. The
	// trailing guard accepts "; " after a tagless name in completion lines
	// and rejects both four-part names and clock times such as 08:42:52.308.
	taskClassPattern = regexp.MustCompile(`(?:^|\s)(\w+:\w+:\w+)(?:[^\w:.]|$)`)

	exitPattern = regexp.MustCompile(`exit: (\d+)`)
)

// Classify returns the lifecycle event recorded by line. The boolean is
// false for every line that is not an event, including marker lines with
// no task class. Malformed input is never an error.
func Classify(line string) (models.LogEvent, bool) {
	var kind models.EventKind
	switch {
	case strings.Contains(line, MarkerCached):
		kind = models.EventCached
	case strings.Contains(line, MarkerSubmitted):
		kind = models.EventSubmitted
	case strings.Contains(line, MarkerCompleted):
		kind = models.EventCompleted
	default:
		return models.LogEvent{}, false
	}

	class, ok := TaskClass(line)
	if !ok {
		return models.LogEvent{}, false
	}

	ev := models.LogEvent{Kind: kind, TaskClass: class}
	if kind == models.EventCompleted {
		ev.ExitCode = ExitCode(line)
	}
	return ev, true
}

// TaskClass extracts the first word:word:word token of line.
func TaskClass(line string) (string, bool) {
	m := taskClassPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExitCode returns the value of the first "exit: <digits>" field, or nil
// when there is none or it does not fit in an int.
func ExitCode(line string) *int {
	m := exitPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &code
}
