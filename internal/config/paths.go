// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the per-user nfwatch directory.
	GlobalDirName = ".nfwatch"

	// SettingsFileName is the name of the settings file within GlobalDirName.
	SettingsFileName = "settings.yaml"

	// EnvPrefix prefixes every environment override (NFWATCH_LOG_PATH, ...).
	EnvPrefix = "NFWATCH"
)

// GlobalDir returns the path to the global nfwatch directory (~/.nfwatch/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// EnsureGlobalDir creates the global nfwatch directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
