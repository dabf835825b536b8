package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/dreamscape/internal/celebration"
	"github.com/thenoetrevino/dreamscape/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names a YAML file whose theme block overrides the config theme
const ThemeFileEnv = "DREAMSCAPE_THEME_FILE"

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Board       BoardConfig        `yaml:"board"`
	Celebration CelebrationConfig  `yaml:"celebration"`
}

// BoardConfig controls how board-local units map onto terminal cells
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`  // board units per terminal column
	CellHeight int `yaml:"cell_height"` // board units per terminal row
	Nudge      int `yaml:"nudge"`       // board units per keyboard drag step
}

// CelebrationConfig controls the completion banner
type CelebrationConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from DREAMSCAPE_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when the file
// does not exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Preset must be resolved before the theme file merges over it
	config.applyDefaults()
	loadThemeFile(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dreamscape", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dreamscape", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Board.CellWidth <= 0 {
		c.Board.CellWidth = 10
	}
	if c.Board.CellHeight <= 0 {
		c.Board.CellHeight = 20
	}
	if c.Board.Nudge <= 0 {
		c.Board.Nudge = 10
	}
	if c.Celebration.Duration <= 0 {
		c.Celebration.Duration = celebration.DefaultDuration
	}
}
