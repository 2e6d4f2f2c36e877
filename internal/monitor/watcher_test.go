package monitor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatcherSignalsLogWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".nextflow.log")
	writeLog(t, path, "")

	w, err := NewWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	writeLog(t, filepath.Join(dir, "other.txt"), "noise")
	select {
	case <-w.Changes():
		t.Fatal("unexpected change for an unrelated file")
	case <-time.After(3 * debounceDelay):
	}

	for i := 0; i < 5; i++ {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = f.WriteString("Submitted process > A:B:C (1)\n")
		_ = f.Close()
	}

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled after writing the log")
	}
}
