package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/nfwatch/internal/aggregate"
	"github.com/watchfire-io/nfwatch/internal/render"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print pipeline status once and exit",
	Long: `Print pipeline status once and exit.

Uses the same counters as "watch" but writes plain lines with no cursor
movement, so the output can be piped or captured.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	addSourceFlags(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	snap, err := aggregate.AggregateFile(settings.LogPath)
	if err != nil {
		return err
	}

	styles := render.PlainStyles()
	if useColor(settings.Color) {
		styles = render.DefaultStyles()
	}
	return render.WriteSummary(os.Stdout, snap, render.Timestamp(time.Now()), styles)
}
