package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
	"github.com/vovakirdan/avoid-the-block/internal/storage"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes and their unlock thresholds",
	Long: `Themes unlock when your best leaderboard score reaches their threshold.
Pick one in the menu or pass --theme for a single run.`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	best := 0
	if store, err := storage.Open(flagDBPath); err == nil {
		if high, err := store.HighScore(); err == nil {
			best = high
		}
		store.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	}

	current := avoid.DefaultThemeName
	if manager, err := storage.OpenSettingsManager(settingsApp); err == nil {
		if settings, err := storage.NewSettingsStore(manager); err == nil {
			current = settings.Settings().Theme
		}
	}

	fmt.Printf("Themes (best score: %d)\n", best)
	fmt.Println()
	for _, t := range avoid.Themes() {
		mark := " "
		if t.Name == current {
			mark = "*"
		}
		status := "unlocked"
		if !t.Unlocked(best) {
			status = fmt.Sprintf("locked, requires %d", t.Unlock)
		}
		fmt.Printf("  %s %-14s %s\n", mark, t.Name, status)
	}
}
