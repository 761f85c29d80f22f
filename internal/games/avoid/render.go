package avoid

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// Visual characters for rendering
const (
	BlockChar    = '█'
	PlayerChar   = '▀'
	TrailChar    = '═'
	GroundChar   = '▔'
	SparkChar    = '*'
	FadedChar    = '·'
	BackdropChar = '·'
)

// hudRows is the height of the score panel above the playfield.
const hudRows = 2

// Minimum terminal size that still fits a recognisable playfield.
const (
	MinScreenW = 30
	MinScreenH = 14
)

var (
	hudText   = core.RGB(245, 245, 245)
	hudDim    = core.RGB(190, 190, 200)
	groundCol = core.RGB(40, 44, 60)
)

// Viewport maps world coordinates onto the terminal grid.
type Viewport struct {
	Field  core.Rect // interior cells, excluding the border
	scaleX float64
	scaleY float64
}

// NewViewport fits a worldW x worldH playfield below the HUD of a w x h screen.
func NewViewport(w, h int, worldW, worldH float64) Viewport {
	field := core.NewRect(1, hudRows+1, max(1, w-2), max(1, h-hudRows-2))
	return Viewport{
		Field:  field,
		scaleX: float64(field.W) / worldW,
		scaleY: float64(field.H) / worldH,
	}
}

// Point converts a world position to a cell.
func (v Viewport) Point(x, y float64) (int, int) {
	return v.Field.X + int(math.Floor(x*v.scaleX)), v.Field.Y + int(math.Floor(y*v.scaleY))
}

// Rect converts a world rectangle to cells, never smaller than one cell.
func (v Viewport) Rect(r core.RectF) core.Rect {
	x, y := v.Point(r.X, r.Y)
	w := max(1, int(math.Round(r.W*v.scaleX)))
	h := max(1, int(math.Round(r.H*v.scaleY)))
	return core.NewRect(x, y, w, h)
}

// Contains reports whether a cell lies inside the playfield.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.Field.X && x < v.Field.Right() && y >= v.Field.Y && y < v.Field.Bottom()
}

// clip limits a cell rectangle to the playfield.
func (v Viewport) clip(r core.Rect) core.Rect {
	x0 := max(r.X, v.Field.X)
	y0 := max(r.Y, v.Field.Y)
	x1 := min(r.Right(), v.Field.Right())
	y1 := min(r.Bottom(), v.Field.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// EffectsSummary lists active effects, e.g. "Shield | Slow 1.2s | 2x 9s | Dash x2".
func (s *Simulation) EffectsSummary() string {
	var info []string
	if s.shield {
		info = append(info, "Shield")
	}
	if s.slowRemaining > 0 {
		info = append(info, fmt.Sprintf("Slow %.1fs", s.slowRemaining))
	}
	if s.multRemaining > 0 {
		info = append(info, fmt.Sprintf("%dx %.0fs", s.multiplier, s.multRemaining))
	}
	if s.player.DashCharges > 0 {
		info = append(info, fmt.Sprintf("Dash x%d", s.player.DashCharges))
	}
	return strings.Join(info, " | ")
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.RGB(239, 83, 80))
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), hudDim)
		return
	}
	g.sim.Draw(dst)
}

// Draw renders the simulation: backdrop, HUD, obstacles, power-ups, player, particles.
func (s *Simulation) Draw(dst *core.Screen) {
	vp := NewViewport(dst.Width(), dst.Height(), s.cfg.World.Width, s.cfg.World.Height)
	t := s.theme

	s.drawBackdrop(dst, vp)
	s.drawHUD(dst)
	dst.DrawBox(core.NewRect(vp.Field.X-1, vp.Field.Y-1, vp.Field.W+2, vp.Field.H+2), t.Accent2.Scale(0.6))

	// ground strip under the paddle
	_, gy := vp.Point(0, s.player.Y+s.player.H+12)
	if gy < vp.Field.Bottom() {
		dst.DrawHLine(vp.Field.X, gy, vp.Field.W, GroundChar, groundCol)
	}

	for _, o := range s.obstacles {
		dst.DrawRect(vp.clip(vp.Rect(o.Rect())), BlockChar, o.Color)
	}

	for _, p := range s.powerups {
		r := vp.Rect(p.Rect())
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		if !vp.Contains(cx, cy) {
			continue
		}
		c := p.Kind.Color()
		dst.SetColor(cx, cy, p.Kind.Glyph(), c)
		if r.W >= 3 {
			if vp.Contains(cx-1, cy) {
				dst.SetColor(cx-1, cy, '(', c)
			}
			if vp.Contains(cx+1, cy) {
				dst.SetColor(cx+1, cy, ')', c)
			}
		}
	}

	s.drawPlayer(dst, vp)

	for _, p := range s.particles {
		x, y := vp.Point(p.X, p.Y)
		if !vp.Contains(x, y) {
			continue
		}
		a := p.Alpha()
		ch := SparkChar
		if a < 0.4 {
			ch = FadedChar
		}
		dst.SetColor(x, y, ch, p.Color.Scale(0.3+0.7*a))
	}

	if s.paused {
		drawMessage(dst, "PAUSED", "Press P to resume", t.Accent)
	}
}

func (s *Simulation) drawBackdrop(dst *core.Screen, vp Viewport) {
	t := s.theme
	for y := vp.Field.Y; y < vp.Field.Bottom(); y++ {
		row := float64(y-vp.Field.Y) / float64(max(1, vp.Field.H-1))
		c := t.BgTop.Lerp(t.BgBottom, row).Lerp(t.Accent2, 0.25)
		for x := vp.Field.X; x < vp.Field.Right(); x++ {
			if (x*7+y*13)%29 == 0 {
				dst.SetColor(x, y, BackdropChar, c)
			}
		}
	}
}

func (s *Simulation) drawHUD(dst *core.Screen) {
	t := s.theme
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", s.score), hudText)
	best := fmt.Sprintf("Best: %d", max(s.Best(), s.score))
	dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, t.Accent2)

	if fx := s.EffectsSummary(); fx != "" {
		dst.DrawTextColor(1, 1, fx, hudDim)
	} else {
		dst.DrawTextColor(1, 1, "Avoid the falling blocks!", hudDim)
	}
}

func (s *Simulation) drawPlayer(dst *core.Screen, vp Viewport) {
	p := s.player
	t := s.theme
	r := vp.clip(vp.Rect(p.Rect()))
	dst.DrawRect(r, PlayerChar, p.Color)

	if p.Dashing(s.clock) {
		// trail on the side the paddle came from
		tx := r.X - 1
		if p.VX < 0 {
			tx = r.Right()
		}
		for i := range 3 {
			x := tx - i
			if p.VX < 0 {
				x = tx + i
			}
			if vp.Contains(x, r.Y) {
				dst.SetColor(x, r.Y, TrailChar, t.Accent2.Scale(1-0.25*float64(i)))
			}
		}
	}

	if s.shield {
		if vp.Contains(r.X-1, r.Y) {
			dst.SetColor(r.X-1, r.Y, '[', t.Accent2)
		}
		if vp.Contains(r.Right(), r.Y) {
			dst.SetColor(r.Right(), r.Y, ']', t.Accent2)
		}
	}
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, hudText)
}
