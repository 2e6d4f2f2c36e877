package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/nfwatch/internal/config"
	"github.com/watchfire-io/nfwatch/internal/monitor"
	"github.com/watchfire-io/nfwatch/internal/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redraw pipeline status in place until interrupted",
	Long: `Redraw pipeline status in place until interrupted.

Every interval the whole log is re-read and one line per process is
rewritten at the same position in the terminal:

  2025-07-29T09:52:31.076123
  [ NFCORE_TARGETASSEMBLY:TARGETASSEMBLY:BITSCOREFILTER ]: 96 / 96
  [ NFCORE_TARGETASSEMBLY:TARGETASSEMBLY:CLEANHEADERS   ]: 40 / 97 (1 errored)`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addMonitorFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := config.NewLogger(settings.DiagnosticsLog)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := render.Options{Color: useColor(settings.Color)}
	if stdoutIsTerminal() {
		opts.Width = terminalWidth
	}

	m := monitor.New(settings, render.New(os.Stdout, opts),
		monitor.WithLogger(logger),
	)
	return m.Run(ctx)
}
