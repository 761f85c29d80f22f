package avoid

import (
	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// PowerUpKind is the closed set of collectible effects.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota // absorbs one hit
	PowerUpSlow                      // halves obstacle motion for a while
	PowerUpMult                      // doubles points for a while
	PowerUpDash                      // banks one cooldown-free dash
	powerUpKinds
)

// String returns the lowercase kind name used in events and sound mapping.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSlow:
		return "slow"
	case PowerUpMult:
		return "mult"
	case PowerUpDash:
		return "dash"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpShield:
		return 'S'
	case PowerUpSlow:
		return 'W'
	case PowerUpMult:
		return 'M'
	case PowerUpDash:
		return 'D'
	default:
		return '?'
	}
}

// Color returns the icon color for a kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpShield:
		return core.RGB(100, 180, 255)
	case PowerUpSlow:
		return core.RGB(200, 120, 255)
	case PowerUpMult:
		return core.RGB(255, 200, 60)
	case PowerUpDash:
		return core.RGB(255, 100, 100)
	default:
		return core.RGB(200, 200, 200)
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	X, Y  float64
	Size  float64
	Kind  PowerUpKind
	Speed float64
}

// Rect returns the power-up's hitbox.
func (p *PowerUp) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Size, p.Size)
}

// rollKind draws a kind using the configured weights.
func (s *Simulation) rollKind() PowerUpKind {
	w := s.cfg.PowerUps.Weights
	weights := [powerUpKinds]float64{w.Shield, w.Slow, w.Mult, w.Dash}

	total := 0.0
	for _, v := range weights {
		total += v
	}
	r := s.rng.Float64() * total
	for k, v := range weights {
		if r < v {
			return PowerUpKind(k)
		}
		r -= v
	}
	// Float rounding can leave r just past the last bucket.
	for k := len(weights) - 1; k >= 0; k-- {
		if weights[k] > 0 {
			return PowerUpKind(k)
		}
	}
	return PowerUpShield
}

func (s *Simulation) spawnPowerUp() *PowerUp {
	pc := s.cfg.PowerUps
	kind := s.rollKind()
	x := randRange(s.rng, pc.Margin, int(s.cfg.World.Width-pc.Size)-pc.Margin)
	p := &PowerUp{
		X:     float64(x),
		Y:     -pc.Size - float64(randRange(s.rng, 0, pc.SpawnOffset)),
		Size:  pc.Size,
		Kind:  kind,
		Speed: s.speedBase * pc.SpeedFactor,
	}
	s.powerups = append(s.powerups, p)
	return p
}

// effects maps each kind to the state change it causes on pickup.
var effects = [powerUpKinds]func(s *Simulation){
	PowerUpShield: func(s *Simulation) {
		s.shield = true
	},
	PowerUpSlow: func(s *Simulation) {
		s.slowRemaining = s.cfg.PowerUps.SlowDuration
	},
	PowerUpMult: func(s *Simulation) {
		s.multRemaining = s.cfg.PowerUps.MultDuration
		s.multiplier = s.cfg.PowerUps.MultFactor
	},
	PowerUpDash: func(s *Simulation) {
		s.player.DashCharges++
	},
}

// ApplyPowerUp applies the effect of kind. Timed effects refresh rather than stack.
func (s *Simulation) ApplyPowerUp(kind PowerUpKind) {
	if kind < 0 || kind >= powerUpKinds {
		return
	}
	effects[kind](s)
	s.emit(core.EventPickup, kind.String())
}
