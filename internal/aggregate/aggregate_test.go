package aggregate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/watchfire-io/nfwatch/internal/models"
)

func aggregateString(t *testing.T, log string) *Snapshot {
	t.Helper()
	snap, err := Aggregate(strings.NewReader(log))
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	return snap
}

func TestAggregateCounters(t *testing.T) {
	tests := []struct {
		name  string
		log   string
		class string
		want  models.Counters
	}{
		{
			name: "cached then failed completion",
			log: "Jul-29 08:42:52.308 [Actor Thread 1] INFO x - [fd/dc57cd] Cached process > A:B:C (x1)\n" +
				"Jul-29 09:52:31.076 [Task monitor] DEBUG y - Task completed > TaskHandler[id: 1; name: A:B:C (x2); status: COMPLETED; exit: 1; error: -; ]\n",
			class: "A:B:C",
			want:  models.Counters{Submitted: 1, Completed: 2, Errored: 1},
		},
		{
			name:  "submitted only",
			log:   "Jul-29 09:52:30.084 [Task submitter] INFO nextflow.Session - [91/076f86] Submitted process > X:Y:Z (s1)\n",
			class: "X:Y:Z",
			want:  models.Counters{Submitted: 1},
		},
		{
			name: "cached lines count both lifecycle points",
			log: "Cached process > P:Q:R (a)\n" +
				"Cached process > P:Q:R (b)\n" +
				"Cached process > P:Q:R (c)\n",
			class: "P:Q:R",
			want:  models.Counters{Submitted: 3, Completed: 3},
		},
		{
			name: "exit 0 never errors",
			log: "Submitted process > P:Q:R (a)\n" +
				"Task completed > name: P:Q:R (a); exit: 0;\n" +
				"Submitted process > P:Q:R (b)\n" +
				"Task completed > name: P:Q:R (b); exit: 0;\n",
			class: "P:Q:R",
			want:  models.Counters{Submitted: 2, Completed: 2},
		},
		{
			name: "each nonzero exit errors once",
			log: "Task completed > name: P:Q:R (a); exit: 1;\n" +
				"Task completed > name: P:Q:R (b); exit: 255;\n" +
				"Task completed > name: P:Q:R (c);\n",
			class: "P:Q:R",
			want:  models.Counters{Completed: 3, Errored: 2},
		},
		{
			name: "tagless task completes",
			log: "Jul-29 10:01:02.003 [Task submitter] INFO  nextflow.Session - [0a/1b2c3d] Submitted process > NFCORE_X:X:MULTIQC\n" +
				"Jul-29 10:05:00.100 [Task monitor] DEBUG n.processor.TaskPollingMonitor - Task completed > TaskHandler[jobId: 1; id: 9; name: NFCORE_X:X:MULTIQC; status: COMPLETED; exit: 0; error: -; ]\n",
			class: "NFCORE_X:X:MULTIQC",
			want:  models.Counters{Submitted: 1, Completed: 1},
		},
		{
			name:  "last line without newline",
			log:   "Submitted process > A:B:C (a)\r\nSubmitted process > A:B:C (b)",
			class: "A:B:C",
			want:  models.Counters{Submitted: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := aggregateString(t, tt.log)
			got, ok := snap.Get(tt.class)
			if !ok {
				t.Fatalf("class %q missing from snapshot (keys %v)", tt.class, snap.Keys())
			}
			if got != tt.want {
				t.Errorf("counters = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAggregateIgnoresNoise(t *testing.T) {
	log := "Jul-29 08:40:00.000 [main] DEBUG nextflow.cli.Launcher - $> nextflow run main.nf\n" +
		"\n" +
		"Submitted process > NOT_A_TRIPLE (x)\n" +
		"garbage \x00\xff line\n"

	snap := aggregateString(t, log)
	if snap.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (keys %v)", snap.Len(), snap.Keys())
	}
	if snap.Width() != 0 {
		t.Errorf("Width() = %d, want 0", snap.Width())
	}
}

func TestAggregateOrderAndWidth(t *testing.T) {
	log := "Submitted process > PIPE:SUB:SHORT (a)\n" +
		"Submitted process > PIPE:SUBWORKFLOW:LONGER_NAME (a)\n" +
		"Task completed > name: PIPE:SUB:SHORT (a); exit: 0;\n" +
		"Cached process > PIPE:SUB:THIRD (z)\n"

	snap := aggregateString(t, log)
	want := []string{"PIPE:SUB:SHORT", "PIPE:SUBWORKFLOW:LONGER_NAME", "PIPE:SUB:THIRD"}
	if got := snap.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := snap.Width(); got != len("PIPE:SUBWORKFLOW:LONGER_NAME") {
		t.Errorf("Width() = %d, want %d", got, len("PIPE:SUBWORKFLOW:LONGER_NAME"))
	}

	total := snap.Totals()
	if want := (models.Counters{Submitted: 3, Completed: 2}); total != want {
		t.Errorf("Totals() = %+v, want %+v", total, want)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	log := "Submitted process > A:A:A (1)\n" +
		"Cached process > B:B:B (1)\n" +
		"Task completed > name: A:A:A (1); exit: 2;\n" +
		"Submitted process > C:C:C (1)\n"

	first := aggregateString(t, log)
	second := aggregateString(t, log)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("snapshots differ:\n%+v\n%+v", first, second)
	}
}

func TestAggregateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".nextflow.log")
	if err := os.WriteFile(path, []byte("Submitted process > X:Y:Z (s1)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := AggregateFile(path)
	if err != nil {
		t.Fatalf("AggregateFile() error: %v", err)
	}
	if got, _ := snap.Get("X:Y:Z"); got.Submitted != 1 {
		t.Errorf("Submitted = %d, want 1", got.Submitted)
	}
}

func TestAggregateFileMissing(t *testing.T) {
	_, err := AggregateFile(filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Fatal("expected an error for a missing log")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}

func TestNilSnapshot(t *testing.T) {
	var snap *Snapshot
	if snap.Len() != 0 || snap.Width() != 0 || snap.Keys() != nil {
		t.Error("nil snapshot should behave as empty")
	}
	if _, ok := snap.Get("A:B:C"); ok {
		t.Error("nil snapshot should have no classes")
	}
}
