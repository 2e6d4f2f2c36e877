package cli

import (
	"github.com/spf13/cobra"

	"github.com/watchfire-io/nfwatch/internal/config"
	"github.com/watchfire-io/nfwatch/internal/models"
)

// Flag names shared by every command that reads the log.
const (
	flagLog      = "log"
	flagInterval = "interval"
	flagFollow   = "follow"
	flagWait     = "wait"
	flagColor    = "color"
	flagDiagLog  = "diagnostics-log"
)

// addSourceFlags registers the flags needed to read the log once.
func addSourceFlags(cmd *cobra.Command) {
	defaults := models.NewSettings()
	f := cmd.Flags()
	f.StringP(flagLog, "l", defaults.LogPath, "Path to the Nextflow log")
	f.String(flagColor, defaults.Color, "Colour output: auto, always or never")
}

// addMonitorFlags registers the flags of the long-running commands.
func addMonitorFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	defaults := models.NewSettings()
	f := cmd.Flags()
	f.DurationP(flagInterval, "i", defaults.Interval, "Time between redraws")
	f.BoolP(flagFollow, "f", defaults.Follow, "Also redraw as soon as the log is written")
	f.Duration(flagWait, defaults.WaitForLog, "How long to wait for a log that does not exist yet (0 = fail immediately)")
	f.String(flagDiagLog, defaults.DiagnosticsLog, "Write diagnostic logs (JSON) to this file")
}

// resolveSettings loads settings.yaml and NFWATCH_* overrides, then applies
// only the flags the user set explicitly. Flags cmd does not register are
// never Changed.
func resolveSettings(cmd *cobra.Command) (*models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed(flagLog) {
		settings.LogPath, _ = f.GetString(flagLog)
	}
	if f.Changed(flagInterval) {
		settings.Interval, _ = f.GetDuration(flagInterval)
	}
	if f.Changed(flagFollow) {
		settings.Follow, _ = f.GetBool(flagFollow)
	}
	if f.Changed(flagWait) {
		settings.WaitForLog, _ = f.GetDuration(flagWait)
	}
	if f.Changed(flagColor) {
		settings.Color, _ = f.GetString(flagColor)
	}
	if f.Changed(flagDiagLog) {
		settings.DiagnosticsLog, _ = f.GetString(flagDiagLog)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
