package avoid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

var (
	// ErrUnknownTheme is returned for a name no palette has.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrThemeLocked is returned when the best score is below the threshold.
	ErrThemeLocked = errors.New("theme locked")
)

// Theme is a cosmetic palette. It never affects gameplay.
type Theme struct {
	Name     string
	BgTop    core.Color
	BgBottom core.Color
	Accent   core.Color
	Accent2  core.Color
	Panel    core.Color
	Player   core.Color
	Unlock   int // best score required to select the theme
}

// DefaultThemeName is used when settings name an unknown theme.
const DefaultThemeName = "DarkBlueGlow"

var themes = []Theme{
	{
		Name:     "DarkBlueGlow",
		BgTop:    core.RGB(18, 24, 37),
		BgBottom: core.RGB(15, 35, 60),
		Accent:   core.RGB(94, 230, 182),
		Accent2:  core.RGB(118, 199, 255),
		Panel:    core.RGB(22, 30, 45),
		Player:   core.RGB(94, 230, 182),
		Unlock:   0,
	},
	{
		Name:     "Neon",
		BgTop:    core.RGB(10, 10, 20),
		BgBottom: core.RGB(5, 2, 20),
		Accent:   core.RGB(255, 85, 255),
		Accent2:  core.RGB(0, 255, 170),
		Panel:    core.RGB(18, 16, 30),
		Player:   core.RGB(255, 85, 255),
		Unlock:   15,
	},
	{
		Name:     "Cyberpunk",
		BgTop:    core.RGB(12, 6, 20),
		BgBottom: core.RGB(28, 6, 40),
		Accent:   core.RGB(255, 120, 60),
		Accent2:  core.RGB(200, 40, 200),
		Panel:    core.RGB(30, 16, 36),
		Player:   core.RGB(255, 120, 60),
		Unlock:   40,
	},
	{
		Name:     "Minimal",
		BgTop:    core.RGB(245, 245, 245),
		BgBottom: core.RGB(230, 230, 230),
		Accent:   core.RGB(40, 40, 40),
		Accent2:  core.RGB(80, 80, 80),
		Panel:    core.RGB(250, 250, 250),
		Player:   core.RGB(40, 40, 40),
		Unlock:   0,
	},
	{
		Name:     "Retro",
		BgTop:    core.RGB(6, 10, 24),
		BgBottom: core.RGB(2, 6, 20),
		Accent:   core.RGB(120, 200, 100),
		Accent2:  core.RGB(180, 140, 80),
		Panel:    core.RGB(14, 18, 28),
		Player:   core.RGB(120, 200, 100),
		Unlock:   25,
	},
}

// Themes returns all palettes in menu order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeByName looks up a palette. Unknown names fall back to the default theme.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return themes[0], false
}

// DefaultTheme returns the DarkBlueGlow palette.
func DefaultTheme() Theme {
	return themes[0]
}

// Unlocked reports whether a player whose best score is best may select t.
func (t Theme) Unlocked(best int) bool {
	return best >= t.Unlock
}

// SelectTheme resolves name for a player whose best score is best.
// Unknown and locked themes are refused.
func SelectTheme(name string, best int) (Theme, error) {
	t, ok := ThemeByName(name)
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if !t.Unlocked(best) {
		return Theme{}, fmt.Errorf("%w: %s requires %d points, best is %d", ErrThemeLocked, t.Name, t.Unlock, best)
	}
	return t, nil
}
