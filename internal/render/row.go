package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/nfwatch/internal/models"
)

// FormatRow formats one task class as
// "[ <class padded to width> ]: <completed> / <submitted+errored>" with an
// " (<n> errored)" suffix when any task failed.
func FormatRow(class string, c models.Counters, width int, st Styles) string {
	padded := class
	if pad := width - ansi.StringWidth(class); pad > 0 {
		padded += strings.Repeat(" ", pad)
	}

	counts := fmt.Sprintf("%d / %d", c.Completed, c.Expected())
	if c.Finished() {
		counts = st.Finished.Render(counts)
	}

	row := "[ " + st.Class.Render(padded) + " ]: " + counts
	if c.Errored > 0 {
		row += " " + st.Errored.Render(fmt.Sprintf("(%d errored)", c.Errored))
	}
	return row
}
