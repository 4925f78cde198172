// Package config provides YAML configuration loading for term2048.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/engine"
)

// Config is the complete application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Theme   ThemeConfig   `yaml:"theme"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// UIConfig controls the interactive session.
type UIConfig struct {
	ConfirmQuit    bool `yaml:"confirm_quit"`
	ConfirmRestart bool `yaml:"confirm_restart"`
	ShowHelp       bool `yaml:"show_help"`
}

// ThemeConfig defines board and tile colors.
type ThemeConfig struct {
	Board         string         `yaml:"board"`
	Empty         string         `yaml:"empty"`
	DarkText      string         `yaml:"dark_text"`
	LightText     string         `yaml:"light_text"`
	LightTextFrom int            `yaml:"light_text_from"`
	Tiles         map[int]string `yaml:"tiles"` // Background per tile value
}

// LogConfig controls the log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used by the interactive game only
}

// StorageConfig controls the results database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	for v := range c.Theme.Tiles {
		if !engine.IsPowerOfTwo(v) {
			return fmt.Errorf("config: theme.tiles: %d is not a tile value", v)
		}
	}
	if c.Theme.LightTextFrom < 0 {
		return fmt.Errorf("config: theme.light_text_from must not be negative")
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// TileColor returns the configured background for a tile value.
func (t ThemeConfig) TileColor(value int) (string, bool) {
	c, ok := t.Tiles[value]
	return c, ok
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}
