package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/watchfire-io/nfwatch/internal/aggregate"
	"github.com/watchfire-io/nfwatch/internal/models"
	"github.com/watchfire-io/nfwatch/internal/monitor"
	"github.com/watchfire-io/nfwatch/internal/render"
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	settings *models.Settings
	source   *monitor.Source
	styles   render.Styles
	logger   *zap.Logger
	changes  <-chan struct{}

	snapshot  *aggregate.Snapshot
	updatedAt time.Time
	waiting   bool
	err       error

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel creates the initial TUI model.
func NewModel(settings *models.Settings, source *monitor.Source) Model {
	return Model{
		settings: settings,
		source:   source,
		styles:   render.DefaultStyles(),
		logger:   zap.NewNop(),
	}
}

// Init loads the first snapshot and starts polling.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadSnapshotCmd(m.source),
		pollTick(m.settings.Interval),
	}
	if m.changes != nil {
		cmds = append(cmds, waitForChangeCmd(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			return m, loadSnapshotCmd(m.source)
		}

	case TickMsg:
		return m, tea.Batch(loadSnapshotCmd(m.source), pollTick(m.settings.Interval))

	case LogChangedMsg:
		m.logger.Debug("log changed")
		return m, tea.Batch(loadSnapshotCmd(m.source), waitForChangeCmd(m.changes))

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		m.updatedAt = msg.At
		m.waiting = false
		m.refreshContent()
		m.logger.Debug("snapshot loaded", zap.Int("classes", msg.Snapshot.Len()))
		return m, nil

	case WaitingMsg:
		m.updatedAt = msg.At
		m.waiting = true
		return m, nil

	case ErrorMsg:
		m.logger.Error("load failed", zap.Error(msg.Err))
		m.err = msg.Err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the header, the task-class rows and the status bar.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatusBar(),
	)
}

// updateDimensions resizes the viewport, reserving one line each for the
// header and the status bar.
func (m *Model) updateDimensions() {
	height := m.height - 2
	if height < 1 {
		height = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.refreshContent()
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(rowsContent(m.snapshot, m.styles))
}

// rowsContent formats every task class with the dashboard row layout.
func rowsContent(snap *aggregate.Snapshot, styles render.Styles) string {
	if snap.Len() == 0 {
		return hintStyle.Render("No processes yet.")
	}

	width := snap.Width()
	var b strings.Builder
	snap.Each(func(class string, c models.Counters) {
		b.WriteString(render.FormatRow(class, c, width, styles))
		b.WriteByte('\n')
	})
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderHeader() string {
	left := " nfwatch  " + m.source.Path()

	right := ""
	switch {
	case m.waiting:
		right = waitingStyle.Render("waiting for log")
	case !m.updatedAt.IsZero():
		right = render.Timestamp(m.updatedAt)
	}
	right += " "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(m.width).Render(ansi.Truncate(left+strings.Repeat(" ", gap)+right, m.width, ""))
}

func (m Model) renderStatusBar() string {
	left := " " + keyHint("q", "quit") + "  " + keyHint("r", "refresh") + "  " + keyHint("j/k", "scroll")

	total := m.snapshot.Totals()
	right := fmt.Sprintf("%d / %d completed", total.Completed, total.Expected())
	if total.Finished() {
		right = doneStyle.Render(right)
	}
	if total.Errored > 0 {
		right += "  " + failedStyle.Render(fmt.Sprintf("%d errored", total.Errored))
	}
	right += " "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(m.width).Render(ansi.Truncate(left+strings.Repeat(" ", gap)+right, m.width, ""))
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}
