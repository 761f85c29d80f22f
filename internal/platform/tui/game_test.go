package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
)

func testGame(t *testing.T) GameModel {
	t.Helper()
	opts := &Options{Logger: log.New(io.Discard)}
	opts.defaults()
	return NewGameModel(opts, testConfig(), avoid.DefaultTheme(), nil, NewPainter(nil), 1)
}

func updateGame(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T, want GameModel", next)
		}
	}
	return m
}

// atNameEntry puts m where a finished round leaves it.
func atNameEntry(m GameModel, score int) GameModel {
	m.phase = phaseNameEntry
	m.score = score
	m.name.Focus()
	return m
}

func TestGameNameEntrySaves(t *testing.T) {
	m := atNameEntry(testGame(t), 42)
	m = updateGame(t, m, runeKey("A"), runeKey("d"), runeKey("a"), keyEnter)

	if m.phase != phaseSummary {
		t.Fatalf("phase = %v, want summary", m.phase)
	}
	got := m.Leaderboard()
	if len(got) != 1 || got[0] != (avoid.Entry{Name: "Ada", Score: 42}) {
		t.Errorf("leaderboard = %v, want [Ada 42]", got)
	}
}

func TestGameNameEntryDefaultsEmptyName(t *testing.T) {
	m := atNameEntry(testGame(t), 7)
	m = updateGame(t, m, keyEnter)

	got := m.Leaderboard()
	if len(got) != 1 || got[0].Name != avoid.DefaultName {
		t.Errorf("leaderboard = %v, want default name", got)
	}
}

func TestGameNameEntrySkip(t *testing.T) {
	m := atNameEntry(testGame(t), 42)
	m = updateGame(t, m, keyEsc)

	if m.phase != phaseSummary {
		t.Fatalf("phase = %v, want summary", m.phase)
	}
	if got := m.Leaderboard(); len(got) != 0 {
		t.Errorf("skipped entry was ranked: %v", got)
	}
}

func TestGameSummaryKeys(t *testing.T) {
	m := atNameEntry(testGame(t), 3)
	m = updateGame(t, m, keyEsc)

	restarted := updateGame(t, m, runeKey("r"))
	if restarted.phase != phasePlaying || restarted.score != 0 {
		t.Errorf("r should restart: phase %v score %d", restarted.phase, restarted.score)
	}

	for _, k := range []tea.KeyMsg{keyEnter, keyEsc, {Type: tea.KeySpace, Runes: []rune{' '}}} {
		if !updateGame(t, m, k).BackToMenu() {
			t.Errorf("%q should go back to the menu", k.String())
		}
	}
}

func TestGameSummaryDoesNotTick(t *testing.T) {
	m := atNameEntry(testGame(t), 3)
	m = updateGame(t, m, keyEsc)

	_, cmd := m.Update(TickMsg{Loop: 1})
	if cmd != nil {
		t.Error("summary should stop the tick loop")
	}
}

func TestGameHeldMoveUsesLatch(t *testing.T) {
	m := testGame(t)
	x0 := m.game.Sim().Player().X

	m = updateGame(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 5 {
		m = updateGame(t, m, TickMsg{Loop: 1})
	}
	if x := m.game.Sim().Player().X; x >= x0 {
		t.Errorf("player x = %v, want left of %v", x, x0)
	}
}

func TestGamePauseIsOneShot(t *testing.T) {
	m := testGame(t)
	m = updateGame(t, m, runeKey("p"), TickMsg{Loop: 1})
	if !m.game.State().Paused {
		t.Fatal("p should pause")
	}
	m = updateGame(t, m, TickMsg{Loop: 1})
	if !m.game.State().Paused {
		t.Error("pause should not toggle again without a key")
	}
	if len(m.pending.Actions) != 0 {
		t.Error("pending actions should clear after a tick")
	}
}

func TestGameQuit(t *testing.T) {
	m := updateGame(t, testGame(t), tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("ctrl+c should quit")
	}
}

func TestGameRestartKeepsFixedSeed(t *testing.T) {
	fresh := testGame(t)
	m := atNameEntry(testGame(t), 3)
	m = updateGame(t, m, keyEsc, runeKey("r"))

	if m.config.Seed != testConfig().Seed {
		t.Fatalf("seed = %d after restart, want %d", m.config.Seed, testConfig().Seed)
	}
	for range 240 {
		fresh.game.Step(core.NewInputFrame())
		m.game.Step(core.NewInputFrame())
	}
	want, got := fresh.game.Sim().Snapshot(), m.game.Sim().Snapshot()
	if got.Hash() != want.Hash() {
		t.Error("a restarted round should replay the fixed seed")
	}
}

func TestGameZeroSeedPicksOne(t *testing.T) {
	opts := &Options{Logger: log.New(io.Discard)}
	opts.defaults()
	cfg := testConfig()
	cfg.Seed = 0

	m := NewGameModel(opts, cfg, avoid.DefaultTheme(), nil, NewPainter(nil), 1)
	if m.replay || m.config.Seed == 0 {
		t.Errorf("zero seed should be replaced: replay=%v seed=%d", m.replay, m.config.Seed)
	}
}
