package models

import (
	"fmt"
	"time"
)

// Colour modes for dashboard output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings represents the dashboard configuration.
// This corresponds to ~/.nfwatch/settings.yaml.
type Settings struct {
	Version        int           `yaml:"version"`
	LogPath        string        `yaml:"log_path"`
	Interval       time.Duration `yaml:"interval"`
	WaitForLog     time.Duration `yaml:"wait_for_log"` // 0 = a missing log is fatal
	Follow         bool          `yaml:"follow"`
	Color          string        `yaml:"color"` // "auto" | "always" | "never"
	DiagnosticsLog string        `yaml:"diagnostics_log,omitempty"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:    1,
		LogPath:    ".nextflow.log",
		Interval:   10 * time.Second,
		WaitForLog: 0,
		Follow:     false,
		Color:      ColorAuto,
	}
}

// Validate checks that the settings can drive a monitor.
func (s *Settings) Validate() error {
	if s.LogPath == "" {
		return fmt.Errorf("log path must not be empty")
	}
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", s.Interval)
	}
	if s.WaitForLog < 0 {
		return fmt.Errorf("wait_for_log must not be negative, got %s", s.WaitForLog)
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (expected auto, always or never)", s.Color)
	}
	return nil
}
