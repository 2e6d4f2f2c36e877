package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/watchfire-io/nfwatch/internal/aggregate"
	"github.com/watchfire-io/nfwatch/internal/models"
	"github.com/watchfire-io/nfwatch/internal/monitor"
	"github.com/watchfire-io/nfwatch/internal/render"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	settings := models.NewSettings()
	settings.LogPath = filepath.Join(t.TempDir(), ".nextflow.log")
	source := monitor.NewSource(settings.LogPath, 0, monitor.SystemClock())

	updated, _ := NewModel(settings, source).Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	return updated.(Model)
}

func TestModelShowsSnapshotRows(t *testing.T) {
	m := newTestModel(t)

	snap, err := aggregate.Aggregate(strings.NewReader(
		"Cached process > A:B:C (x1)\n" +
			"Task completed > name: A:B:C (x2); exit: 1;\n" +
			"Submitted process > LONGER:CLASS:NAME (s1)\n"))
	if err != nil {
		t.Fatal(err)
	}

	updated, _ := m.Update(SnapshotMsg{Snapshot: snap, At: time.Now()})
	view := ansi.Strip(updated.(Model).View())

	for _, want := range []string{
		"[ A:B:C             ]: 2 / 2 (1 errored)",
		"[ LONGER:CLASS:NAME ]: 0 / 1",
		"2 / 3 completed",
		"1 errored",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelEmptySnapshot(t *testing.T) {
	m := newTestModel(t)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No processes yet.") {
		t.Errorf("view should show the empty hint:\n%s", view)
	}
}

func TestModelWaiting(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(WaitingMsg{At: time.Now()})
	if view := ansi.Strip(updated.(Model).View()); !strings.Contains(view, "waiting for log") {
		t.Errorf("view should report waiting:\n%s", view)
	}
}

func TestModelErrorQuits(t *testing.T) {
	m := newTestModel(t)
	loadErr := errors.New("boom")

	updated, cmd := m.Update(ErrorMsg{Err: loadErr})
	if !errors.Is(updated.(Model).err, loadErr) {
		t.Errorf("err = %v, want %v", updated.(Model).err, loadErr)
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command should quit the program")
	}
}

func TestLoadSnapshotCmdMissingLog(t *testing.T) {
	source := monitor.NewSource(filepath.Join(t.TempDir(), "missing.log"), 0, monitor.SystemClock())
	msg := loadSnapshotCmd(source)()

	errMsg, ok := msg.(ErrorMsg)
	if !ok {
		t.Fatalf("msg = %T, want ErrorMsg", msg)
	}
	if !errors.Is(errMsg.Err, monitor.ErrLogUnavailable) {
		t.Errorf("err = %v, want ErrLogUnavailable", errMsg.Err)
	}
}

func TestModelUsesConfiguredStyles(t *testing.T) {
	m := newTestModel(t)
	m.styles = render.PlainStyles()
	m.styles.Class = lipgloss.NewStyle().Transform(strings.ToLower)

	snap, err := aggregate.Aggregate(strings.NewReader("Submitted process > A:B:C (x1)\n"))
	if err != nil {
		t.Fatal(err)
	}

	updated, _ := m.Update(SnapshotMsg{Snapshot: snap, At: time.Now()})
	if view := ansi.Strip(updated.(Model).View()); !strings.Contains(view, "[ a:b:c ]: 0 / 1") {
		t.Errorf("rows should use the model styles:\n%s", view)
	}
}

func TestWithOptionsLogsLoadFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := newTestModel(t).withOptions(Options{Logger: zap.New(core)})

	m.Update(ErrorMsg{Err: errors.New("boom")})

	if got := logs.FilterMessage("load failed").Len(); got != 1 {
		t.Errorf("logged %d load failures, want 1", got)
	}
}

func TestModelFollowsLogChanges(t *testing.T) {
	m := newTestModel(t)
	changes := make(chan struct{}, 1)
	m.changes = changes

	changes <- struct{}{}
	if msg := waitForChangeCmd(changes)(); msg != (LogChangedMsg{}) {
		t.Fatalf("msg = %#v, want LogChangedMsg", msg)
	}

	_, cmd := m.Update(LogChangedMsg{})
	if cmd == nil {
		t.Fatal("a log change should trigger a reload")
	}

	close(changes)
	if msg := waitForChangeCmd(changes)(); msg != nil {
		t.Errorf("msg = %#v, want nil after the watcher closed", msg)
	}
}
