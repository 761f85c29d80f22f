// avoid is a terminal take on Avoid The Block: dodge falling blocks, grab
// power-ups and climb the leaderboard.
//
// Usage:
//
//	avoid                    - Start menu (same as 'avoid menu')
//	avoid play               - Jump straight into a round
//	avoid menu               - Start menu
//	avoid scores             - Print the leaderboard
//	avoid themes             - List themes and their unlock thresholds
//	avoid serve              - Start SSH server for remote play
//	avoid list               - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.avoid/scores.db)
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--theme <name>        - Theme for this run
//	--mute                - Start with sound off
//	--log <path>          - Log file (default: ~/.avoid/avoid.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/avoid-the-block/internal/config"
	// Import the game to register it
	_ "github.com/vovakirdan/avoid-the-block/internal/games/avoid"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagMute       bool
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "avoid",
	Short: "Avoid The Block - dodge falling blocks in your terminal",
	Long: `Avoid The Block is a survival arcade game for the terminal.
Move a paddle left and right, dodge the falling blocks, grab power-ups
and try to top the leaderboard.

Available commands:
  play     - Start a round right away
  menu     - Start menu (default)
  scores   - Print the leaderboard
  themes   - List themes
  serve    - Start SSH server for remote play
  list     - Show registered games

Examples:
  avoid
  avoid play --difficulty hard
  avoid play --seed 42 --theme Neon
  avoid serve --ssh :2222
  avoid scores`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Theme for this run (must be unlocked)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (default ~/"+config.AppDir+"/avoid.log)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
}
