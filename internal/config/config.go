// Package config loads the winctl configuration file. Everything has a
// sensible default; the file only exists to override the main-window
// selection policy and logging verbosity.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MainWindowConfig controls the "plausible main window" heuristic used when
// resolving a single window for a process.
type MainWindowConfig struct {
	RequireVisible bool `yaml:"require_visible"`
	RequireTitle   bool `yaml:"require_title"`
}

// LoggingConfig controls CLI/MCP diagnostic output. The library itself never
// logs.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the effective winctl configuration.
type Config struct {
	MainWindow MainWindowConfig `yaml:"main_window"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Default returns the built-in configuration: prefer visible titled windows,
// log at info.
func Default() *Config {
	return &Config{
		MainWindow: MainWindowConfig{
			RequireVisible: true,
			RequireTitle:   true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns ~/.config/winctl/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winctl", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file is
// not an error; defaults apply.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from an explicit path, overlaying the
// file's values on the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would otherwise fail silently at use sites.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown logging level %q (want debug, info, warn, or error)", c.Logging.Level)
	}
}

// SlogLevel maps the configured level name onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
