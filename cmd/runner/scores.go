package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jungle-runner/internal/platform/tui"
	"github.com/vovakirdan/jungle-runner/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, most recent runs and lifetime statistics.

Examples:
  runner scores               # Top 10 runs
  runner scores --recent      # Latest runs
  runner scores --limit 25
  runner scores --tui         # Interactive scoreboard
  runner scores --clear       # Forget every run and the high score`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run and the high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Println("All runs cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, width, height)
	}

	var runs []storage.RunRecord
	title := "Top Runs"
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Jungle Runner: %s ===\n", title)
	fmt.Printf("Best score: %d\n\n", best)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Go play!")
		return nil
	}

	fmt.Printf("%-5s %-8s %-8s %-8s %-16s %s\n", "#", "Score", "Bananas", "Time", "Player", "Date")
	fmt.Println("-----------------------------------------------------------------")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("%-5d %-8d %-8d %-8s %-16s %s\n",
			i+1, r.Score, r.Bananas,
			(time.Duration(r.DurationMs) * time.Millisecond).Round(time.Second).String(),
			player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Printf("\n%d runs, average score %.1f, %d bananas collected\n",
			stats.Runs, stats.AvgScore, stats.TotalBananas)
	}
	fmt.Println()
	return nil
}
