package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
	"github.com/vovakirdan/avoid-the-block/internal/storage"
)

func TestScoreboardFallbackRows(t *testing.T) {
	m := NewScoreboardModel(nil, []avoid.Entry{{Name: "Ada", Score: 30}, {Name: "Bob", Score: 12}}, 80, 24)
	view := m.View()
	for _, want := range []string{"LEADERBOARD", "Ada", "30", "Bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 80, 24)
	if !strings.Contains(m.View(), "No scores yet") {
		t.Error("empty board should say so")
	}
}

func TestScoreboardFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.RecordResult("Cy", 55); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if err := store.SaveRound(55, 40*time.Second); err != nil {
		t.Fatalf("SaveRound: %v", err)
	}

	m := NewScoreboardModel(store, []avoid.Entry{{Name: "ignored", Score: 1}}, 100, 30)
	view := m.View()
	if !strings.Contains(view, "Cy") || strings.Contains(view, "ignored") {
		t.Errorf("store rows should win over fallback:\n%s", view)
	}
	if !strings.Contains(view, "Rounds: 1") {
		t.Errorf("view should show round stats:\n%s", view)
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		goingBack bool
		quitting  bool
	}{
		{"esc", keyEsc, true, false},
		{"enter", keyEnter, true, false},
		{"b", runeKey("b"), true, false},
		{"q", runeKey("q"), false, true},
		{"down", keyDown, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := NewScoreboardModel(nil, nil, 80, 24).Update(tt.msg)
			m := next.(ScoreboardModel)
			if m.IsGoingBack() != tt.goingBack || m.IsQuitting() != tt.quitting {
				t.Errorf("back=%v quit=%v, want %v %v", m.IsGoingBack(), m.IsQuitting(), tt.goingBack, tt.quitting)
			}
		})
	}
}
