package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/avoid-the-block/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round right away",
	Long: `Start playing immediately. After the round you land in the menu.

Controls:
  Left/A, Right/D         - Move
  Space                   - Dash in the current direction
  Shift+Left/Q, Shift+Right/E - Dash left/right
  P                       - Pause
  Esc                     - Back to menu
  Ctrl+S                  - Save a screenshot
  Ctrl+C                  - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  avoid play
  avoid play --difficulty easy
  avoid play --difficulty fixed --seed 7
  avoid play --config ./my-avoid.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		mustRunApp(tui.ScreenGame)
	},
}
