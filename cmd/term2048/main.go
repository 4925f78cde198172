// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048 play                - Play interactively
//	term2048 scores              - Show recorded games
//	term2048 simulate --moves .. - Replay a move script headlessly
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.term2048/results.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles with the arrow keys. Equal tiles merge when they collide.
Reach 2048 to win; the game is lost when no move is possible.

Available commands:
  play      - Play interactively
  scores    - Show recorded games
  simulate  - Replay a move script without a terminal UI

Examples:
  term2048 play
  term2048 play --seed 42
  term2048 scores --limit 20
  term2048 simulate --seed 42 --moves LLURDD`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides storage.db_path)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	appConfig = cfg
	return nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "term2048",
		Level:           level,
	})
}

// openLogFile opens the configured log file for appending.
// The caller closes the returned file.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}
	return f, nil
}
