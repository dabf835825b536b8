package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/dreamscape/internal/config/colors"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddItem != "a" {
		t.Errorf("Default AddItem key = %s, want a", defaults.AddItem)
	}
	if defaults.Increment != "+" || defaults.Decrement != "-" {
		t.Errorf("Default step keys = %s/%s, want +/-", defaults.Increment, defaults.Decrement)
	}
	if defaults.ToggleTheme != "T" {
		t.Errorf("Default ToggleTheme key = %s, want T", defaults.ToggleTheme)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Celebration.Duration != 5*time.Second {
		t.Errorf("Celebration.Duration = %v, want 5s", cfg.Celebration.Duration)
	}
	if cfg.Board.CellWidth != 10 || cfg.Board.CellHeight != 20 {
		t.Errorf("Board cells = %dx%d, want 10x20", cfg.Board.CellWidth, cfg.Board.CellHeight)
	}
	if cfg.ColorScheme.Accent != "#87CEEB" {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configDir := filepath.Join(dir, "dreamscape")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	path := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	writeConfig(t, tempDir, `key_mappings:
  quit: "x"
  add_item: "n"
board:
  cell_width: 8
celebration:
  duration: 2s
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddItem != "n" {
		t.Errorf("Loaded AddItem key = %s, want n", cfg.KeyMappings.AddItem)
	}
	// Unspecified keys get defaults
	if cfg.KeyMappings.GrabItem != "m" {
		t.Errorf("GrabItem = %s, want default m", cfg.KeyMappings.GrabItem)
	}
	if cfg.Board.CellWidth != 8 || cfg.Board.CellHeight != 20 {
		t.Errorf("Board cells = %dx%d, want 8x20", cfg.Board.CellWidth, cfg.Board.CellHeight)
	}
	if cfg.Celebration.Duration != 2*time.Second {
		t.Errorf("Celebration.Duration = %v, want 2s", cfg.Celebration.Duration)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want override", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.CardBorder != colors.Monochrome().CardBorder {
		t.Errorf("CardBorder = %s, want monochrome preset", cfg.ColorScheme.CardBorder)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	path := writeConfig(t, tempDir, "key_mappings: [unterminated")

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() with invalid YAML should fail")
	}
}

func TestThemeFileOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, []byte("theme:\n  accent: \"#FF0000\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	t.Setenv(ThemeFileEnv, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000 from theme file", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Normal != colors.Default().Normal {
		t.Errorf("Normal = %s, want default (not in theme file)", cfg.ColorScheme.Normal)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	cfg := Default()
	cfg.KeyMappings.Quit = "Q"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.KeyMappings.Quit != "Q" {
		t.Errorf("Quit = %s, want Q", loaded.KeyMappings.Quit)
	}
}
