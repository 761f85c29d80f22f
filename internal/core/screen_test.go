package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color.Set {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColorAndBounds(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(239, 83, 80)

	s.SetColor(5, 5, 'X', red)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != red {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds writes are ignored, reads return a blank
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("Row(1) = %q, expected Hello at column 2", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredUsesRuneWidth(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "·Hi·", ColorDefault)

	x := (20 - 4) / 2
	if s.Get(x+1, 1) != 'H' || s.Get(x+2, 1) != 'i' {
		t.Errorf("centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorDefault)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}

	s.Clear()
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)
	corners := map[[2]int]rune{{1, 1}: '╭', {5, 1}: '╮', {1, 4}: '╰', {5, 4}: '╯'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if s.Row(0) != "AAA" || s.Row(1) != "BBB" {
		t.Errorf("shrink should keep top-left content, got %q / %q", s.Row(0), s.Row(1))
	}

	s.Resize(6, 4)
	if !strings.HasPrefix(s.Row(0), "AAA") || s.Row(3) != "      " {
		t.Errorf("grow should keep content and pad with spaces, got %q / %q", s.Row(0), s.Row(3))
	}
	if s.Row(-1) != "      " {
		t.Error("out of bounds row should be spaces")
	}
}
