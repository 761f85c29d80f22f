package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

func TestPainterPlainCells(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	got := NewPainter(nil).Render(s)
	want := "ab  \n cd "
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPainterColoredRunsKeepText(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.TrueColor)

	s := core.NewScreen(5, 1)
	s.DrawTextColor(0, 0, "ab", core.RGB(255, 0, 0))
	s.DrawTextColor(2, 0, "cde", core.RGB(0, 255, 0))

	out := NewPainter(r).Render(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cde") {
		t.Errorf("Render() lost text: %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("Render() should style colored runs: %q", out)
	}
}

func TestTint(t *testing.T) {
	s := core.NewScreen(2, 1)
	s.SetColor(0, 0, '#', core.RGB(0, 0, 0))
	s.Set(1, 0, 'x')

	Tint(s, core.RGB(200, 100, 0), 0.5)

	if got := s.GetCell(0, 0).Color; got != core.RGB(100, 50, 0) {
		t.Errorf("tinted color = %+v, want 100,50,0", got)
	}
	if got := s.GetCell(1, 0).Color; got.Set {
		t.Error("default-colored cells should stay unstyled")
	}
	if s.Get(0, 0) != '#' {
		t.Error("Tint should keep runes")
	}
}
