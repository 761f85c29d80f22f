// Package config provides YAML-based game configuration loading and
// difficulty presets for Avoid The Block.
package config

// AvoidConfig contains all tuning for the survival game.
// Distances are world units (the playfield is World.Width x World.Height),
// speeds are world units per 60 Hz frame, durations are seconds unless
// the field name says otherwise.
type AvoidConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Speed      SpeedConfig      `yaml:"speed"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines paddle size, movement and dash.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Y            float64 `yaml:"y"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Friction     float64 `yaml:"friction"`     // 0..1, applied per tick without input
	Acceleration float64 `yaml:"acceleration"` // approach rate per second
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`
}

// ObstacleConfig defines falling block shapes and wave placement.
type ObstacleConfig struct {
	MinWidth          int     `yaml:"min_width"`
	MaxWidth          int     `yaml:"max_width"`
	MinHeight         int     `yaml:"min_height"`
	MaxHeight         int     `yaml:"max_height"`
	SpawnOffset       int     `yaml:"spawn_offset"`       // extra random height above the screen
	MaxPerWave        int     `yaml:"max_per_wave"`       // hard cap on wave size
	WaveGrowthEvery   int     `yaml:"wave_growth_every"`  // +1 wave size every N points
	PlacementAttempts int     `yaml:"placement_attempts"` // per wave
	OverlapDistance   float64 `yaml:"overlap_distance"`   // vertical rejection window
	SwayRange         float64 `yaml:"sway_range"`         // sway drawn from [-range, range)
	SwayScale         float64 `yaml:"sway_scale"`         // horizontal units per frame per sway
	ExitMargin        float64 `yaml:"exit_margin"`        // passes below height + margin
}

// SpawnConfig defines the obstacle wave timer in milliseconds.
type SpawnConfig struct {
	IntervalMs         float64 `yaml:"interval_ms"`
	MinIntervalMs      float64 `yaml:"min_interval_ms"`
	ShrinkMin          int     `yaml:"shrink_min"`
	ShrinkMax          int     `yaml:"shrink_max"`
	ShrinkScoreDivisor int     `yaml:"shrink_score_divisor"`
}

// SpeedConfig defines obstacle fall speed scaling.
type SpeedConfig struct {
	Base     float64 `yaml:"base"`
	PerScore float64 `yaml:"per_score"`
	Jitter   float64 `yaml:"jitter"`
}

// PowerUpConfig defines collectible spawning and effect strength.
type PowerUpConfig struct {
	IntervalMs   float64       `yaml:"interval_ms"`
	Size         float64       `yaml:"size"`
	Margin       int           `yaml:"margin"`
	SpawnOffset  int           `yaml:"spawn_offset"`
	SpeedFactor  float64       `yaml:"speed_factor"` // fraction of base speed
	ExitMargin   float64       `yaml:"exit_margin"`
	Weights      PowerUpWeight `yaml:"weights"`
	SlowDuration float64       `yaml:"slow_duration"`
	SlowFactor   float64       `yaml:"slow_factor"`
	MultDuration float64       `yaml:"mult_duration"`
	MultFactor   int           `yaml:"mult_factor"`
}

// PowerUpWeight holds the relative spawn weight of each kind.
type PowerUpWeight struct {
	Shield float64 `yaml:"shield"`
	Slow   float64 `yaml:"slow"`
	Mult   float64 `yaml:"mult"`
	Dash   float64 `yaml:"dash"`
}

// ParticleConfig defines burst effects.
type ParticleConfig struct {
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinLife     float64 `yaml:"min_life"`
	MaxLife     float64 `yaml:"max_life"`
	MinSize     int     `yaml:"min_size"`
	MaxSize     int     `yaml:"max_size"`
	Gravity     float64 `yaml:"gravity"`
	Drag        float64 `yaml:"drag"`
	ShieldBurst int     `yaml:"shield_burst"`
	FatalBurst  int     `yaml:"fatal_burst"`
}

// DifficultyConfig shifts the starting point of a session.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // false keeps the spawn interval constant
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of a full (1.0) difficulty level.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // base speed grows by this fraction
	IntervalReduction float64 `yaml:"interval_reduction"` // ms removed from the starting interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
