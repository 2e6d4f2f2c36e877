package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/watchfire-io/nfwatch/internal/config"
	"github.com/watchfire-io/nfwatch/internal/models"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Show or initialise settings",
	Long: `Show or initialise settings.

Settings are read from ~/.nfwatch/settings.yaml, then overridden by
NFWATCH_* environment variables (NFWATCH_LOG_PATH, NFWATCH_INTERVAL,
NFWATCH_WAIT_FOR_LOG, NFWATCH_FOLLOW, NFWATCH_COLOR,
NFWATCH_DIAGNOSTICS_LOG), then by command-line flags.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default settings to ~/.nfwatch/settings.yaml",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	addMonitorFlags(configShowCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing settings file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if config.FileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSettings(models.NewSettings()); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("Wrote " + path))
	return nil
}
