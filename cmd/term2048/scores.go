package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagLimit  int
	flagTUI    bool
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games",
	Long: `Display recorded games, best first: highest tile, then fewest moves.

Examples:
  term2048 scores
  term2048 scores --limit 20
  term2048 scores --recent
  term2048 scores --tui
  term2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse results in an interactive table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of best result")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, appConfig.LogLevel())

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			logger.Error("cannot clear results", "err", err)
			os.Exit(1)
		}
		logger.Info("results cleared", "db", appConfig.Storage.DBPath)
		return
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunResults(store, width, height); err != nil {
			logger.Error("results view failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, flagLimit, flagRecent); err != nil {
		logger.Error("cannot list results", "err", err)
		os.Exit(1)
	}
}

// printScores writes the result table and summary to w.
func printScores(w io.Writer, store *storage.Store, limit int, recent bool) error {
	var (
		results []storage.Result
		err     error
	)
	if recent {
		results, err = store.RecentResults(limit)
	} else {
		results, err = store.BestResults(limit)
	}
	if err != nil {
		return err
	}

	if recent {
		fmt.Fprintln(w, "Recent Games - 2048")
	} else {
		fmt.Fprintln(w, "Best Games - 2048")
	}
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'term2048 play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-9s  %s\n", "Rank", "Max", "Moves", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-9s  %s\n", "----", "---", "-----", "------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-9s  %s\n", i+1, r.MaxTile, r.Moves, r.Outcome(), dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Won: %d  Lost: %d  Best tile: %d\n",
		stats.Games, stats.Wins, stats.Losses, stats.BestTile)
	return nil
}
