package cli

import (
	"github.com/spf13/cobra"

	"github.com/watchfire-io/nfwatch/internal/config"
	"github.com/watchfire-io/nfwatch/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Full-screen scrollable dashboard",
	Long: `Full-screen scrollable dashboard.

Same counters as "watch", drawn on the alternate screen with a status bar
and scrolling for pipelines with more processes than fit on screen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		logger, cleanup, err := config.NewLogger(settings.DiagnosticsLog)
		if err != nil {
			return err
		}
		defer cleanup()

		return tui.Run(settings, tui.Options{
			Color:  useColor(settings.Color),
			Logger: logger,
		})
	},
}

func init() {
	addMonitorFlags(tuiCmd)
}
