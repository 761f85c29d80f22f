package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
	"github.com/vovakirdan/avoid-the-block/internal/platform/tui"
	"github.com/vovakirdan/avoid-the-block/internal/storage"
)

var (
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: fmt.Sprintf(`Display the top %d results and round statistics.

Examples:
  avoid scores
  avoid scores --tui
  avoid scores --clear`, avoid.MaxLeaders),
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all ranked results")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Show the interactive leaderboard")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoresTUI {
		mustRunApp(tui.ScreenLeaderboard)
		return
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearLeaderboard(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing leaderboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	scores, err := store.Leaderboard(avoid.MaxLeaders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard - Avoid The Block")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores yet - be the first!")
		fmt.Println()
		fmt.Println("Run 'avoid play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "Rank", avoid.MaxNameLen, "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "----", avoid.MaxNameLen, "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-6d  %s\n", i+1, avoid.MaxNameLen, entry.Name, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.RoundStats(); err == nil && stats.Rounds > 0 {
		fmt.Printf("Rounds played: %d  Average: %.1f  Time played: %s\n",
			stats.Rounds, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
}
