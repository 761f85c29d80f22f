package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "shift+left", "q":
		return core.ActionDashLeft, false
	case "shift+right", "e":
		return core.ActionDashRight, false
	case " ":
		return core.ActionDash, false
	case "up", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionMute
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "m":
		return MenuActionMute
	}
	return MenuActionNone
}

// latchMillis is how long a left/right press counts as held.
// Terminal auto-repeat refreshes it while the key stays down.
const latchMillis = 180

// LatchTicks converts the hold window to ticks at tickRate.
func LatchTicks(tickRate int) uint64 {
	return uint64(max(1, tickRate*latchMillis/1000)) //#nosec G115 -- positive
}

// KeyLatch turns press-only terminal input into held directions.
type KeyLatch struct {
	window    uint64
	leftUntil uint64
	rightUntil uint64
}

// NewKeyLatch creates a latch that holds each press for window ticks.
func NewKeyLatch(window uint64) KeyLatch {
	return KeyLatch{window: max(1, window)}
}

// Press records a direction press at tick. Pressing one side releases the other.
func (l *KeyLatch) Press(a core.Action, tick uint64) {
	switch a {
	case core.ActionLeft:
		l.leftUntil = tick + l.window
		l.rightUntil = 0
	case core.ActionRight:
		l.rightUntil = tick + l.window
		l.leftUntil = 0
	}
}

// Held reports whether a is still held at tick.
func (l KeyLatch) Held(a core.Action, tick uint64) bool {
	switch a {
	case core.ActionLeft:
		return tick < l.leftUntil
	case core.ActionRight:
		return tick < l.rightUntil
	}
	return false
}

// Release drops both directions.
func (l *KeyLatch) Release() {
	l.leftUntil, l.rightUntil = 0, 0
}

// Apply sets the held directions on frame.
func (l KeyLatch) Apply(frame *core.InputFrame, tick uint64) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if l.Held(a, tick) {
			frame.Set(a)
		}
	}
}
