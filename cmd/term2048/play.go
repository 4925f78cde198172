package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - Restart (press twice while playing)
  Q                - Quit (press twice while playing)
  Ctrl+C           - Quit immediately
  Ctrl+S           - Save a screenshot to ~/.term2048/screenshots
  ?                - Toggle the full key help

Examples:
  term2048 play
  term2048 play --seed 42
  term2048 play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Bubble Tea owns the terminal, so logs go to a file
	var logOut io.Writer = io.Discard
	if appConfig.Log.File != "" {
		f, err := openLogFile(appConfig.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut, appConfig.LogLevel())

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open result storage
	var store *storage.Store
	if appConfig.Storage.Enabled {
		var err error
		store, err = storage.Open(appConfig.Storage.DBPath)
		if err != nil {
			logger.Warn("results disabled", "err", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	g := game.New(game.OptionsFromConfig(appConfig, logger))
	logger.Info("session started", "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(g, cfg, tui.Options{
		Store:    store,
		Logger:   logger,
		ShowHelp: appConfig.UI.ShowHelp,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended")
}
