package avoid

import (
	"math"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// particlePalette is shared by every burst regardless of theme.
var particlePalette = []core.Color{
	core.RGB(94, 230, 182),  // accent
	core.RGB(118, 199, 255), // accent2
	core.RGB(255, 214, 102), // yellow
	core.RGB(239, 83, 80),   // red
}

// Particle is a short-lived spark from a collision burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds
	Age    float64
	Size   int
	Color  core.Color
}

// Alpha fades linearly from 1 at birth to 0 at the end of life.
func (p *Particle) Alpha() float64 {
	if p.Life <= 0 {
		return 0
	}
	return math.Max(0, 1-p.Age/p.Life)
}

// Dead reports whether the particle has reached its lifespan.
func (p *Particle) Dead() bool {
	return p.Age >= p.Life
}

func (p *Particle) update(dt, gravity, drag float64) {
	p.Age += dt
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.VX *= drag
	p.VY *= drag
}

// burst emits n particles from (x, y).
func (s *Simulation) burst(x, y float64, n int) {
	pc := s.cfg.Particles
	for range n {
		angle := uniform(s.rng, 0, 2*math.Pi)
		speed := uniform(s.rng, pc.MinSpeed, pc.MaxSpeed)
		s.particles = append(s.particles, &Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  uniform(s.rng, pc.MinLife, pc.MaxLife),
			Size:  randRange(s.rng, pc.MinSize, pc.MaxSize),
			Color: particlePalette[s.rng.Intn(len(particlePalette))],
		})
	}
}

func (s *Simulation) updateParticles(dt float64) {
	pc := s.cfg.Particles
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.update(dt, pc.Gravity, pc.Drag)
		if p.Dead() {
			continue
		}
		kept = append(kept, p)
	}
	clear(s.particles[len(kept):])
	s.particles = kept
}
