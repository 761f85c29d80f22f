package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the fixed tick duration in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies something noteworthy that happened during a tick.
type EventType int

const (
	EventScore       EventType = iota // An obstacle passed below the screen
	EventPickup                       // A power-up was collected
	EventShieldBreak                  // The shield absorbed a hit
	EventHit                          // Fatal collision, round over
	EventDash                         // The player dashed
)

// String returns the name of the event type.
func (e EventType) String() string {
	switch e {
	case EventScore:
		return "score"
	case EventPickup:
		return "pickup"
	case EventShieldBreak:
		return "shield"
	case EventHit:
		return "hit"
	case EventDash:
		return "dash"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for read-only consumers (audio, HUD).
type Event struct {
	Type   EventType
	Detail string // e.g. power-up kind for EventPickup
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
