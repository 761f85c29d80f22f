// Package avoid implements Avoid The Block: a paddle at the bottom of a
// 720x900 playfield dodges falling blocks and collects power-ups while
// points accrue for every block that passes.
//
// Simulation is the pure game core. Game adapts it to the registry.Game
// interface so the terminal platform can drive it with fixed ticks.
package avoid

import (
	"github.com/vovakirdan/avoid-the-block/internal/config"
	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/registry"
)

// ID is the registry identifier, also used as the score table key.
const ID = "avoid"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the tuning for a new game: YAML search path, then preset.
// Errors fall back to the built-in defaults.
func LoadConfig() (config.AvoidConfig, error) {
	cfg, err := config.LoadAvoid(configPath)
	if err != nil {
		cfg = config.DefaultAvoidConfig()
	}
	config.ApplyAvoidPreset(&cfg, difficultyPreset)
	return cfg, err
}

// Game adapts Simulation to registry.Game.
type Game struct {
	sim      *Simulation
	runtime  core.RuntimeConfig
	theme    Theme
	recorder ResultRecorder
	board    []Entry
	cfgErr   error
}

// New creates a new game instance with the default theme.
func New() *Game {
	return &Game{theme: DefaultTheme()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Avoid The Block"
}

// SetTheme selects the palette for the next Reset.
func (g *Game) SetTheme(t Theme) {
	g.theme = t
	if g.sim != nil {
		g.sim.theme = t
		g.sim.player.Color = t.Player
	}
}

// SetRecorder wires persistence for RecordResult across resets.
func (g *Game) SetRecorder(r ResultRecorder) {
	g.recorder = r
	if g.sim != nil {
		g.sim.SetRecorder(r)
	}
}

// SetLeaderboard seeds the ranked snapshot used for Best and unlocks.
func (g *Game) SetLeaderboard(entries []Entry) {
	g.board = entries
	if g.sim != nil {
		g.sim.SetLeaderboard(entries)
	}
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Reset builds a fresh simulation seeded from runtime and starts a session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	g.cfgErr = err

	if g.sim != nil {
		g.board = g.sim.Leaderboard()
	}
	g.sim = NewSimulation(cfg, runtime.Seed)
	g.sim.SetRecorder(g.recorder)
	g.sim.SetLeaderboard(g.board)
	g.sim.StartSession(g.theme)
}

// Sim exposes the running simulation to the platform layer.
func (g *Game) Sim() *Simulation {
	return g.sim
}

// InputFromFrame maps platform actions onto simulation input.
func InputFromFrame(in core.InputFrame) Input {
	out := Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Pause: in.Has(core.ActionPause),
	}
	switch {
	case in.Has(core.ActionDashLeft):
		out.Dash, out.DashDir = true, -1
	case in.Has(core.ActionDashRight):
		out.Dash, out.DashDir = true, 1
	case in.Has(core.ActionDash):
		out.Dash = true
	}
	return out
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}
	g.sim.Tick(g.runtime.TickSeconds(), InputFromFrame(in))

	var events []core.Event
	if evs := g.sim.Events(); len(evs) > 0 {
		events = make([]core.Event, len(evs))
		copy(events, evs)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.RoundEnded(),
		Paused:   g.sim.Paused(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
