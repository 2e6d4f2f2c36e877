// Package render draws the dashboard as a fixed block of terminal lines that
// is rewritten in place on every cycle.
package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/nfwatch/internal/aggregate"
	"github.com/watchfire-io/nfwatch/internal/models"
)

// TimestampLayout is the ISO-8601 layout of the frame header.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Frame is the state carried between renders: how many lines the last frame
// occupied and whether the placeholder block has been written yet.
type Frame struct {
	Lines   int
	Started bool
}

// Options configures a Renderer.
type Options struct {
	// Color enables lipgloss styling of rows.
	Color bool
	// Width reports the terminal width in columns; nil or 0 means unknown.
	// Rows are cut to this width so they never wrap, which would throw the
	// cursor-up count off.
	Width func() int
}

// Renderer writes frames to a terminal.
type Renderer struct {
	out    io.Writer
	opts   Options
	styles Styles
}

// New creates a renderer that writes to out.
func New(out io.Writer, opts Options) *Renderer {
	styles := PlainStyles()
	if opts.Color {
		styles = DefaultStyles()
	}
	return &Renderer{out: out, opts: opts, styles: styles}
}

// Timestamp formats now as a frame header.
func Timestamp(now time.Time) string {
	return now.Format(TimestampLayout)
}

// Render erases the footprint of the previous frame and draws header plus
// one row per task class of snap. It returns the frame to pass to the next
// call. An empty or nil snapshot draws the header alone.
func (r *Renderer) Render(prev Frame, snap *aggregate.Snapshot, header string) (Frame, error) {
	lines := snap.Len() + 1
	up := prev.Lines

	var buf bytes.Buffer
	if !prev.Started {
		for i := 0; i < lines; i++ {
			buf.WriteString(ansi.EraseEntireLine)
			buf.WriteByte('\n')
		}
		up = lines
	}
	if up > 0 {
		buf.WriteString(ansi.CursorUp(up))
	}

	r.writeLine(&buf, r.styles.Header.Render(header))

	width := snap.Width()
	snap.Each(func(class string, c models.Counters) {
		r.writeLine(&buf, FormatRow(class, c, width, r.styles))
	})

	// A shrunken snapshot (log truncated or replaced) leaves rows of the
	// previous frame below; blank them and keep the larger footprint.
	footprint := lines
	for i := lines; i < up; i++ {
		buf.WriteString(ansi.EraseEntireLine)
		buf.WriteByte('\n')
		footprint = up
	}

	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return prev, fmt.Errorf("failed to write frame: %w", err)
	}
	return Frame{Lines: footprint, Started: true}, nil
}

func (r *Renderer) writeLine(buf *bytes.Buffer, line string) {
	if r.opts.Width != nil {
		if w := r.opts.Width(); w > 0 {
			line = ansi.Truncate(line, w, "…")
		}
	}
	buf.WriteString(ansi.EraseEntireLine)
	buf.WriteString(line)
	buf.WriteByte('\n')
}
