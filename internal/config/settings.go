package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/watchfire-io/nfwatch/internal/models"
)

// envOverrides mirrors models.Settings for NFWATCH_* variables. Pointer
// fields stay nil when the variable is unset.
type envOverrides struct {
	LogPath        *string        `envconfig:"LOG_PATH"`
	Interval       *time.Duration `envconfig:"INTERVAL"`
	WaitForLog     *time.Duration `envconfig:"WAIT_FOR_LOG"`
	Follow         *bool          `envconfig:"FOLLOW"`
	Color          *string        `envconfig:"COLOR"`
	DiagnosticsLog *string        `envconfig:"DIAGNOSTICS_LOG"`
}

// LoadSettings loads settings from ~/.nfwatch/settings.yaml and applies
// NFWATCH_* environment overrides. A missing file yields defaults.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom is LoadSettings with an explicit settings file path.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ApplyEnv overlays NFWATCH_* environment variables onto settings.
func ApplyEnv(settings *models.Settings) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to read %s_* environment: %w", EnvPrefix, err)
	}

	if env.LogPath != nil {
		settings.LogPath = *env.LogPath
	}
	if env.Interval != nil {
		settings.Interval = *env.Interval
	}
	if env.WaitForLog != nil {
		settings.WaitForLog = *env.WaitForLog
	}
	if env.Follow != nil {
		settings.Follow = *env.Follow
	}
	if env.Color != nil {
		settings.Color = *env.Color
	}
	if env.DiagnosticsLog != nil {
		settings.DiagnosticsLog = *env.DiagnosticsLog
	}
	return nil
}

// SaveSettings saves settings to ~/.nfwatch/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
