package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.MainWindow.RequireVisible || !cfg.MainWindow.RequireTitle {
		t.Fatalf("expected default main-window policy, got %+v", cfg.MainWindow)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default logging level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromPathOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
main_window:
  require_visible: false
logging:
  level: debug
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MainWindow.RequireVisible {
		t.Fatalf("expected require_visible to be overridden to false")
	}
	if !cfg.MainWindow.RequireTitle {
		t.Fatalf("expected require_title to keep its default")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromPathMalformedYAML(t *testing.T) {
	path := writeConfig(t, "main_window: [not a mapping")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadFromPathRejectsUnknownLevel(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected validation error for unknown level")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		cfg := Default()
		cfg.Logging.Level = name
		if got := cfg.SlogLevel(); got != want {
			t.Fatalf("SlogLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
