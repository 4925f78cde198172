package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/term2048.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		UI: UIConfig{
			ConfirmQuit:    true,
			ConfirmRestart: true,
			ShowHelp:       true,
		},
		Theme: ThemeConfig{
			Board:         "#bbada0",
			Empty:         "#cdc1b4",
			DarkText:      "#776e65",
			LightText:     "#f9f6f2",
			LightTextFrom: 16,
			Tiles: map[int]string{
				2:    "#eee4da",
				4:    "#ede0c8",
				8:    "#f2b179",
				16:   "#f59563",
				32:   "#f67c5f",
				64:   "#f65e3b",
				128:  "#edcf72",
				256:  "#edcc61",
				512:  "#edc850",
				1024: "#edc53f",
				2048: "#edc22e",
			},
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.term2048/term2048.log",
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.term2048/results.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
