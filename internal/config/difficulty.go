package config

import "math"

// DifficultyManager derives session starting parameters from a DifficultyConfig.
// The in-game ramp (interval shrink, per-score speed) lives in the simulation;
// the manager only shifts where that ramp begins.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// Level returns the starting difficulty level.
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// Progressive reports whether the spawn interval shrinks as waves spawn.
func (d *DifficultyManager) Progressive() bool {
	return d.cfg.Enabled
}

// BaseSpeed scales the obstacle base speed by the starting level.
func (d *DifficultyManager) BaseSpeed(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// StartInterval returns the first spawn interval in ms, never below floor.
func (d *DifficultyManager) StartInterval(interval, floor float64) float64 {
	return math.Max(floor, interval-d.initialLevel*d.cfg.Scaling.IntervalReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
