// Package tui provides the Bubble Tea front end for Avoid The Block.
// It handles the terminal UI loop, input mapping, menus and persistence wiring.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the game loop that scheduled it; stale ticks are dropped.
type TickMsg struct {
	Time time.Time
	Loop int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, loop int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
