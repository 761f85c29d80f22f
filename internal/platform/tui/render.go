package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// Painter converts Screen buffers to styled strings.
// Styles are cached per color since a frame reuses few of them.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewPainter creates a painter for r; nil uses the default renderer.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, styles: make(map[core.Color]lipgloss.Style)}
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if c.Set {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	p.styles[c] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !startColor.Set {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Tint blends every colored cell toward c by t. Used for the hit flash.
func Tint(s *core.Screen, c core.Color, t float64) {
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color.Set {
				s.SetColor(x, y, cell.Rune, cell.Color.Lerp(c, t))
			}
		}
	}
}
