package avoid

import "math"

// Snapshot captures simulation state with primitive types for determinism
// checks. Floats are stored as their IEEE bits so equal states hash equally.
type Snapshot struct {
	Tick          uint64
	Score         int
	Multiplier    int
	Shield        bool
	Playing       bool
	RoundEnded    bool
	SlowRemaining float64
	MultRemaining float64
	SpawnInterval float64
	PlayerX       float64
	PlayerVX      float64
	DashCharges   int

	// Each obstacle is 4 values: X, Y, W, H
	ObstacleData []float64
	// Each power-up is 3 values: Kind, X, Y
	PowerUpData []float64
	// Each particle is 3 values: X, Y, Age
	ParticleData []float64
}

// Snapshot returns the current state.
func (s *Simulation) Snapshot() Snapshot {
	obs := make([]float64, 0, len(s.obstacles)*4)
	for _, o := range s.obstacles {
		obs = append(obs, o.X, o.Y, float64(o.W), float64(o.H))
	}
	pus := make([]float64, 0, len(s.powerups)*3)
	for _, p := range s.powerups {
		pus = append(pus, float64(p.Kind), p.X, p.Y)
	}
	parts := make([]float64, 0, len(s.particles)*3)
	for _, p := range s.particles {
		parts = append(parts, p.X, p.Y, p.Age)
	}

	return Snapshot{
		Tick:          s.ticks,
		Score:         s.score,
		Multiplier:    s.multiplier,
		Shield:        s.shield,
		Playing:       s.playing,
		RoundEnded:    s.roundEnded,
		SlowRemaining: s.slowRemaining,
		MultRemaining: s.multRemaining,
		SpawnInterval: s.spawnInterval,
		PlayerX:       s.player.X,
		PlayerVX:      s.player.VX,
		DashCharges:   s.player.DashCharges,
		ObstacleData:  obs,
		PowerUpData:   pus,
		ParticleData:  parts,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Multiplier)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DashCharges) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.Shield)
	h = h*31 + boolBits(snap.Playing)
	h = h*31 + boolBits(snap.RoundEnded)
	h = h*31 + math.Float64bits(snap.SlowRemaining)
	h = h*31 + math.Float64bits(snap.MultRemaining)
	h = h*31 + math.Float64bits(snap.SpawnInterval)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerVX)

	for _, data := range [][]float64{snap.ObstacleData, snap.PowerUpData, snap.ParticleData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}
	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
