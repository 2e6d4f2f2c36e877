// Package cli implements the nfwatch CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nfwatch",
	Short: "Live status dashboard for a running Nextflow pipeline",
	Long: `nfwatch re-reads .nextflow.log on a fixed interval and shows, per
PIPELINE:SUBWORKFLOW:PROCESS, how many tasks have completed out of those
submitted, redrawing the same block of terminal lines in place.

Without a subcommand it runs "nfwatch watch".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWatch,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("Error:")+" "+err.Error())
	}
	return err
}

func init() {
	addMonitorFlags(rootCmd)

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}
