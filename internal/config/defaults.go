package config

import (
	_ "embed"
)

//go:embed defaults/avoid.yaml
var defaultAvoidYAML []byte

// DefaultAvoidConfig returns the built-in tuning, used when no YAML can be parsed.
func DefaultAvoidConfig() AvoidConfig {
	return AvoidConfig{
		World: WorldConfig{
			Width:  720,
			Height: 900,
		},
		Player: PlayerConfig{
			Width:        70,
			Height:       18,
			Y:            790,
			MarginLeft:   20,
			MarginRight:  20,
			MaxSpeed:     8.5,
			Friction:     0.85,
			Acceleration: 1.6,
			DashSpeed:    28.0,
			DashDuration: 0.12,
			DashCooldown: 0.8,
		},
		Obstacles: ObstacleConfig{
			MinWidth:          40,
			MaxWidth:          140,
			MinHeight:         30,
			MaxHeight:         70,
			SpawnOffset:       60,
			MaxPerWave:        3,
			WaveGrowthEvery:   8,
			PlacementAttempts: 8,
			OverlapDistance:   80,
			SwayRange:         0.5,
			SwayScale:         1.0,
			ExitMargin:        100,
		},
		Spawn: SpawnConfig{
			IntervalMs:         700,
			MinIntervalMs:      260,
			ShrinkMin:          8,
			ShrinkMax:          22,
			ShrinkScoreDivisor: 6,
		},
		Speed: SpeedConfig{
			Base:     2.6,
			PerScore: 0.05,
			Jitter:   0.6,
		},
		PowerUps: PowerUpConfig{
			IntervalMs:  12000,
			Size:        36,
			Margin:      40,
			SpawnOffset: 40,
			SpeedFactor: 0.8,
			ExitMargin:  80,
			Weights: PowerUpWeight{
				Shield: 0.25,
				Slow:   0.25,
				Mult:   0.20,
				Dash:   0.30,
			},
			SlowDuration: 2.2,
			SlowFactor:   0.5,
			MultDuration: 10.0,
			MultFactor:   2,
		},
		Particles: ParticleConfig{
			MinSpeed:    2,
			MaxSpeed:    6,
			MinLife:     0.5,
			MaxLife:     1.2,
			MinSize:     2,
			MaxSize:     5,
			Gravity:     0.12,
			Drag:        0.995,
			ShieldBurst: 12,
			FatalBurst:  36,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.4,
				IntervalReduction: 250,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `avoid config dump`.
func DefaultYAML() []byte {
	return defaultAvoidYAML
}
