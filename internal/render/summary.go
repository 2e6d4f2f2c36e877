package render

import (
	"fmt"
	"io"

	"github.com/watchfire-io/nfwatch/internal/aggregate"
	"github.com/watchfire-io/nfwatch/internal/models"
)

// WriteSummary prints snap once as plain lines, without cursor control,
// followed by a totals line.
func WriteSummary(w io.Writer, snap *aggregate.Snapshot, header string, st Styles) error {
	if _, err := fmt.Fprintln(w, st.Header.Render(header)); err != nil {
		return err
	}

	width := snap.Width()
	var werr error
	snap.Each(func(class string, c models.Counters) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintln(w, FormatRow(class, c, width, st))
	})
	if werr != nil {
		return werr
	}

	total := snap.Totals()
	_, err := fmt.Fprintf(w, "%d task classes, %d / %d completed, %d errored\n",
		snap.Len(), total.Completed, total.Expected(), total.Errored)
	return err
}
