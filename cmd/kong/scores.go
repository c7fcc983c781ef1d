package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kong-arcade/internal/games/kong"
	"github.com/vovakirdan/kong-arcade/internal/platform/tui"
	"github.com/vovakirdan/kong-arcade/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best runs",
	Long: `Print the best runs, or the most recent ones with --recent.

Examples:
  kong scores
  kong scores --recent --limit 20
  kong scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history interactively",
	Long: `Open the interactive scoreboard with top and recent runs
and aggregate stats.

Controls:
  Up/Down  - Scroll
  Tab      - Switch between top and recent runs
  Esc/Q    - Close`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the newest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	game := kong.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(game.ID()); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	var runs []storage.RunRecord
	if flagRecent {
		runs, err = store.RecentRuns(game.ID(), flagLimit)
	} else {
		runs, err = store.TopRuns(game.ID(), flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	if flagRecent {
		fmt.Printf("Recent Runs - %s\n", game.Title())
	} else {
		fmt.Printf("High Scores - %s\n", game.Title())
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'kong play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %-9s  %s\n", "Rank", "Player", "Score", "Level", "Time", "End", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %-9s  %s\n", "----", "------", "-----", "-----", "----", "---", "----")

	for i, r := range runs {
		played := time.Duration(r.Ticks) * time.Second / time.Duration(max(flagFPS, 1))
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-6s  %-9s  %s\n",
			i+1, r.Player, r.Score, r.Level, played.Round(time.Second), r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.Stats(game.ID())
	if err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Best level: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.BestLevel)
	}
	return nil
}

func runBoard(_ *cobra.Command, _ []string) error {
	game := kong.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	cfg := terminalConfig()
	_, err = tui.RunScoreboard(store, game.ID(), game.Title(), cfg.TickRate, cfg.ScreenW, cfg.ScreenH)
	return err
}
