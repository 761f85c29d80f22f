package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDash, false},
		{"shift+left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionDashLeft, false},
		{"shift+right", tea.KeyMsg{Type: tea.KeyShiftRight}, core.ActionDashRight, false},
		{"q", runeKey("q"), core.ActionDashLeft, false},
		{"e", runeKey("e"), core.ActionDashRight, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey("m"), MenuActionMute},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestLatchTicks(t *testing.T) {
	tests := []struct {
		rate int
		want uint64
	}{
		{60, 10},
		{30, 5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := LatchTicks(tt.rate); got != tt.want {
			t.Errorf("LatchTicks(%d) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestKeyLatchHoldsForWindow(t *testing.T) {
	l := NewKeyLatch(3)
	l.Press(core.ActionLeft, 10)

	for tick := uint64(10); tick < 13; tick++ {
		if !l.Held(core.ActionLeft, tick) {
			t.Errorf("left should be held at tick %d", tick)
		}
	}
	if l.Held(core.ActionLeft, 13) {
		t.Error("left should be released after the window")
	}
	if l.Held(core.ActionRight, 10) {
		t.Error("right was never pressed")
	}
}

func TestKeyLatchRepeatExtends(t *testing.T) {
	l := NewKeyLatch(3)
	l.Press(core.ActionRight, 0)
	l.Press(core.ActionRight, 2)
	if !l.Held(core.ActionRight, 4) {
		t.Error("repeat should extend the hold")
	}
}

func TestKeyLatchOppositeReleases(t *testing.T) {
	l := NewKeyLatch(5)
	l.Press(core.ActionLeft, 0)
	l.Press(core.ActionRight, 1)
	if l.Held(core.ActionLeft, 1) {
		t.Error("pressing right should release left")
	}
	if !l.Held(core.ActionRight, 1) {
		t.Error("right should be held")
	}

	l.Release()
	if l.Held(core.ActionRight, 1) {
		t.Error("Release should drop every direction")
	}
}

func TestKeyLatchApply(t *testing.T) {
	l := NewKeyLatch(2)
	l.Press(core.ActionLeft, 0)

	frame := core.NewInputFrame()
	l.Apply(&frame, 1)
	if !frame.Has(core.ActionLeft) || frame.Has(core.ActionRight) {
		t.Errorf("Apply set %v, want only Left", frame.Actions)
	}
}
