package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func testApp(start Screen) App {
	return NewApp(Options{Logger: log.New(io.Discard), Start: start}, testConfig())
}

func send(t *testing.T, m App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", next)
		}
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func TestAppMenuNavigation(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  Screen
	}{
		{"play", 0, ScreenGame},
		{"themes", 1, ScreenThemes},
		{"instructions", 2, ScreenInstructions},
		{"leaderboard", 3, ScreenLeaderboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testApp(ScreenMenu)
			for range tt.downs {
				m = send(t, m, keyDown)
			}
			m = send(t, m, keyEnter)
			if m.screen != tt.want {
				t.Fatalf("screen = %v, want %v", m.screen, tt.want)
			}
			if m.View() == "" {
				t.Error("page should render")
			}
		})
	}
}

func TestAppBackReturnsToMenu(t *testing.T) {
	for _, start := range []Screen{ScreenThemes, ScreenInstructions, ScreenLeaderboard} {
		m := testApp(ScreenMenu).open(start)
		m = send(t, m, keyEsc)
		if m.screen != ScreenMenu {
			t.Errorf("esc on %v went to %v, want menu", start, m.screen)
		}
	}
}

func TestAppBackQuitsFromStartPage(t *testing.T) {
	m := testApp(ScreenLeaderboard)
	_, cmd := m.Update(keyEsc)
	if cmd == nil {
		t.Fatal("leaving the start page should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestAppMenuQuit(t *testing.T) {
	m := testApp(ScreenMenu)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(App).View() != "" {
		t.Error("quitting app should render nothing")
	}
}

func TestAppThemePick(t *testing.T) {
	m := testApp(ScreenMenu).open(ScreenThemes)

	// Neon needs points, so the pick is refused.
	m = send(t, m, keyDown, keyEnter)
	if got := m.opts.Settings.Settings().Theme; got != avoid.DefaultTheme().Name {
		t.Errorf("locked theme was applied: %q", got)
	}

	// Minimal is free.
	m = send(t, m, keyDown, keyDown, keyEnter)
	if got := m.opts.Settings.Settings().Theme; got != "Minimal" {
		t.Errorf("theme = %q, want Minimal", got)
	}
	if m.theme().Name != "Minimal" {
		t.Errorf("app theme = %q, want Minimal", m.theme().Name)
	}
}

func TestAppMuteToggle(t *testing.T) {
	m := testApp(ScreenMenu)
	m = send(t, m, runeKey("m"))
	if !m.opts.Settings.Settings().Muted {
		t.Error("m should persist mute")
	}
	if !m.opts.Audio.Muted() {
		t.Error("m should mute audio")
	}
}

func TestAppGameBackToMenu(t *testing.T) {
	m := testApp(ScreenGame)
	if m.game == nil {
		t.Fatal("game page should build a game")
	}
	m = send(t, m, keyEsc)
	if m.screen != ScreenMenu || m.game != nil {
		t.Errorf("esc in game: screen %v, game %v", m.screen, m.game)
	}
}

func TestAppIgnoresStaleTicks(t *testing.T) {
	m := testApp(ScreenMenu)
	m = send(t, m, keyEnter) // play, loop 1
	m = send(t, m, keyEsc)
	m = send(t, m, keyEnter) // play again, loop 2

	next, cmd := m.Update(TickMsg{Loop: 1})
	if cmd != nil {
		t.Error("a tick from the old loop should not schedule another")
	}
	if next.(App).game.tick != 0 {
		t.Error("a tick from the old loop should not step the game")
	}

	next, cmd = m.Update(TickMsg{Loop: 2})
	if cmd == nil {
		t.Error("the live loop should keep ticking")
	}
	if next.(App).game.tick != 1 {
		t.Errorf("tick = %d, want 1", next.(App).game.tick)
	}
}

func TestAppLockedSettingFallsBack(t *testing.T) {
	m := testApp(ScreenMenu)
	m.opts.Settings.SetTheme("Cyberpunk")
	if got := m.theme().Name; got != avoid.DefaultThemeName {
		t.Errorf("locked theme resolved to %q, want the default", got)
	}

	m.leaders = []avoid.Entry{{Name: "Ada", Score: 40}}
	if got := m.theme().Name; got != "Cyberpunk" {
		t.Errorf("theme = %q once unlocked, want Cyberpunk", got)
	}
}
