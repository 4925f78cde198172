package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/game"
)

var flagMoves string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a move script without a terminal UI",
	Long: `Play a sequence of moves headlessly and print the final board.

Moves are the letters L, R, U and D (any case). Spaces and commas are ignored.
With a fixed --seed the same script always produces the same board.

Examples:
  term2048 simulate --seed 42 --moves LLURDD
  term2048 simulate --seed 7 --moves "l,l,u,r" --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Move letters: L, R, U, D")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, appConfig.LogLevel())

	opts := game.OptionsFromConfig(appConfig, logger)
	if err := simulate(os.Stdout, flagMoves, flagSeed, opts); err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

// parseMoves converts a move script into directions.
func parseMoves(script string) ([]engine.Direction, error) {
	var dirs []engine.Direction
	for i, r := range script {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		dir, ok := engine.ParseDirection(string(r))
		if !ok {
			return nil, fmt.Errorf("simulate: bad move %q at position %d", r, i+1)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// actionFor maps a direction to the matching input action.
func actionFor(dir engine.Direction) core.Action {
	switch dir {
	case engine.DirLeft:
		return core.ActionLeft
	case engine.DirRight:
		return core.ActionRight
	case engine.DirUp:
		return core.ActionUp
	default:
		return core.ActionDown
	}
}

// simulate replays script on a fresh game and writes a report to w.
// Moves after the game has ended are reported as ignored.
func simulate(w io.Writer, script string, seed int64, opts game.Options) error {
	dirs, err := parseMoves(script)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = seed

	g := game.New(opts)
	g.Reset(cfg)

	for i, dir := range dirs {
		before := g.State()
		res := g.Step(core.NewInputFrame(actionFor(dir)))

		status := "invalid"
		switch {
		case before.GameOver:
			status = "ignored"
		case res.Moved:
			status = "valid"
		}
		fmt.Fprintf(w, "%3d %-5s %s\n", i+1, dir, status)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	fmt.Fprintln(w)
	for y := range screen.Height() {
		if line := strings.TrimRight(screen.Row(y), " "); line != "" {
			fmt.Fprintln(w, line)
		}
	}

	snap := g.Snapshot()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Moves: %d  Max tile: %d  State: %s\n", snap.Moves, snap.MaxTile, snap.State)
	return nil
}
