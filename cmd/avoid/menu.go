package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/avoid-the-block/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the start menu",
	Long: `Start in the interactive menu: Play, Themes, Instructions,
Leaderboard and Quit. After a round you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  M            - Toggle sound
  Q            - Quit

Examples:
  avoid menu
  avoid menu --fps 30
  avoid menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	mustRunApp(tui.ScreenMenu)
}
