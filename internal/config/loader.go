package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, assets, logs and scores.
const AppDir = ".avoid"

// ErrInvalidConfig is returned when a config parses but cannot drive a session.
var ErrInvalidConfig = errors.New("invalid config")

// LoadAvoid loads the game configuration.
// Search order: customPath -> ~/.avoid/configs/avoid.yaml -> ./configs/avoid.yaml -> embedded default
func LoadAvoid(customPath string) (AvoidConfig, error) {
	cfg := DefaultAvoidConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{UserPath("configs", "avoid.yaml"), filepath.Join("configs", "avoid.yaml")} {
		if path == "" {
			continue
		}
		if parsed, ok := tryLoad(path); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	var embedded AvoidConfig
	if err := yaml.Unmarshal(defaultAvoidYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultAvoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads one optional config file. Missing or broken files are skipped.
func tryLoad(path string) (AvoidConfig, bool) {
	cfg := DefaultAvoidConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// UserPath joins elem under ~/.avoid, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// Validate rejects tuning that would break the simulation's invariants.
func (c AvoidConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Width > c.World.Width-c.Player.MarginLeft-c.Player.MarginRight:
		return fmt.Errorf("%w: player width does not fit between margins", ErrInvalidConfig)
	case c.Obstacles.MinWidth <= 0 || c.Obstacles.MaxWidth < c.Obstacles.MinWidth:
		return fmt.Errorf("%w: obstacle width range", ErrInvalidConfig)
	case float64(c.Obstacles.MaxWidth) > c.World.Width-c.Player.MarginLeft-c.Player.MarginRight:
		return fmt.Errorf("%w: obstacles wider than the playfield", ErrInvalidConfig)
	case c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight:
		return fmt.Errorf("%w: obstacle height range", ErrInvalidConfig)
	case c.Obstacles.MaxPerWave < 1 || c.Obstacles.WaveGrowthEvery < 1:
		return fmt.Errorf("%w: wave sizing", ErrInvalidConfig)
	case c.Spawn.MinIntervalMs <= 0 || c.Spawn.IntervalMs < c.Spawn.MinIntervalMs:
		return fmt.Errorf("%w: spawn interval below floor", ErrInvalidConfig)
	case c.Spawn.ShrinkMax < c.Spawn.ShrinkMin || c.Spawn.ShrinkMin < 0 || c.Spawn.ShrinkScoreDivisor < 1:
		return fmt.Errorf("%w: spawn shrink range", ErrInvalidConfig)
	case c.PowerUps.IntervalMs <= 0:
		return fmt.Errorf("%w: power-up interval must be positive", ErrInvalidConfig)
	case c.PowerUps.Weights.Shield+c.PowerUps.Weights.Slow+c.PowerUps.Weights.Mult+c.PowerUps.Weights.Dash <= 0:
		return fmt.Errorf("%w: power-up weights sum to zero", ErrInvalidConfig)
	case c.Particles.MaxLife < c.Particles.MinLife || c.Particles.MinLife <= 0:
		return fmt.Errorf("%w: particle lifetime range", ErrInvalidConfig)
	case c.Particles.MaxSize < c.Particles.MinSize:
		return fmt.Errorf("%w: particle size range", ErrInvalidConfig)
	}
	return nil
}

// ApplyAvoidPreset modifies the config based on a difficulty preset.
func ApplyAvoidPreset(cfg *AvoidConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
