package avoid

import (
	"math"

	"github.com/vovakirdan/avoid-the-block/internal/config"
	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// neverDashed is the initial dash timestamp, far enough in the past that
// the first dash is never on cooldown.
const neverDashed = -999.0

// Player is the paddle at the bottom of the playfield.
type Player struct {
	X, Y float64
	W, H float64
	VX   float64

	MaxSpeed     float64
	Friction     float64
	Acceleration float64

	DashSpeed    float64
	DashDuration float64
	DashCooldown float64
	LastDash     float64 // simulation clock of the last successful dash
	DashCharges  int     // banked dashes that bypass the cooldown

	Color core.Color

	minX, maxX float64
}

func newPlayer(cfg config.PlayerConfig, world config.WorldConfig, color core.Color) *Player {
	return &Player{
		X:            math.Floor(world.Width/2 - cfg.Width/2),
		Y:            cfg.Y,
		W:            cfg.Width,
		H:            cfg.Height,
		MaxSpeed:     cfg.MaxSpeed,
		Friction:     cfg.Friction,
		Acceleration: cfg.Acceleration,
		DashSpeed:    cfg.DashSpeed,
		DashDuration: cfg.DashDuration,
		DashCooldown: cfg.DashCooldown,
		LastDash:     neverDashed,
		Color:        color,
		minX:         cfg.MarginLeft,
		maxX:         world.Width - cfg.MarginRight - cfg.Width,
	}
}

// Rect returns the player's hitbox.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Center returns the middle of the hitbox, where bursts are emitted.
func (p *Player) Center() (float64, float64) {
	return p.Rect().Center()
}

// Bounds returns the allowed range for X.
func (p *Player) Bounds() (float64, float64) {
	return p.minX, p.maxX
}

// update steers toward the held direction and integrates one tick.
func (p *Player) update(dt float64, left, right bool) {
	target := 0.0
	if left {
		target = -p.MaxSpeed
	}
	if right {
		target = p.MaxSpeed
	}

	p.VX += (target - p.VX) * math.Min(1, p.Acceleration*dt)
	if target == 0 {
		p.VX *= p.Friction
	}

	p.X += p.VX
	if p.X < p.minX {
		p.X = p.minX
		p.VX = 0
	}
	if p.X > p.maxX {
		p.X = p.maxX
		p.VX = 0
	}
}

// TryDash bursts sideways at now. dir is -1, 1, or 0 to follow the current
// velocity (right when still). It returns false and changes nothing while
// on cooldown with no banked charge.
func (p *Player) TryDash(now float64, dir int) bool {
	if now-p.LastDash < p.DashCooldown && p.DashCharges <= 0 {
		return false
	}
	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	case p.VX < 0:
		dir = -1
	default:
		dir = 1
	}

	p.VX = float64(dir) * p.DashSpeed
	p.LastDash = now
	if p.DashCharges > 0 {
		p.DashCharges--
	}
	return true
}

// Dashing reports whether a dash started less than DashDuration ago.
func (p *Player) Dashing(now float64) bool {
	return now-p.LastDash < p.DashDuration
}

// CooldownRemaining returns seconds until a charge-free dash is available.
func (p *Player) CooldownRemaining(now float64) float64 {
	return math.Max(0, p.DashCooldown-(now-p.LastDash))
}
