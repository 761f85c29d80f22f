package avoid

import (
	"math/rand"

	"github.com/vovakirdan/avoid-the-block/internal/config"
	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// framesPerSecond converts elapsed seconds into 60 Hz motion frames.
const framesPerSecond = 60.0

// Input is the control state for one tick.
type Input struct {
	Left, Right bool
	Dash        bool // dash requested this tick
	DashDir     int  // -1 left, 1 right, 0 follow current velocity
	Pause       bool // toggle pause
}

// ResultRecorder persists finished rounds. The sqlite store implements it.
type ResultRecorder interface {
	RecordResult(name string, score int) error
}

// Simulation owns every entity of one game and advances them in Tick.
// It is single-threaded: callers must not tick and read concurrently.
type Simulation struct {
	cfg        config.AvoidConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	theme      Theme

	player    *Player
	obstacles []*Obstacle
	powerups  []*PowerUp
	particles []*Particle

	score         int
	multiplier    int
	shield        bool
	slowRemaining float64
	multRemaining float64

	spawnTimer    float64 // ms
	spawnInterval float64 // ms
	powerupTimer  float64 // ms
	speedBase     float64

	clock float64 // seconds since StartSession
	ticks uint64

	playing    bool
	paused     bool
	roundEnded bool

	events   []core.Event
	board    *Leaderboard
	recorder ResultRecorder
}

// NewSimulation creates a simulation with its own seeded random source.
// Call StartSession before ticking.
func NewSimulation(cfg config.AvoidConfig, seed int64) *Simulation {
	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		theme:      DefaultTheme(),
		board:      NewLeaderboard(nil),
		multiplier: 1,
	}
	s.player = newPlayer(cfg.Player, cfg.World, s.theme.Player)
	s.spawnInterval = s.startInterval()
	s.speedBase = s.difficulty.BaseSpeed(cfg.Speed.Base)
	return s
}

// SetRecorder wires the persistent store used by RecordResult.
func (s *Simulation) SetRecorder(r ResultRecorder) {
	s.recorder = r
}

// SetLeaderboard replaces the ranked snapshot used for Best and theme unlocks.
func (s *Simulation) SetLeaderboard(entries []Entry) {
	s.board = NewLeaderboard(entries)
}

func (s *Simulation) startInterval() float64 {
	return s.difficulty.StartInterval(s.cfg.Spawn.IntervalMs, s.cfg.Spawn.MinIntervalMs)
}

// StartSession resets every entity and counter and starts playing with theme.
func (s *Simulation) StartSession(theme Theme) {
	s.theme = theme
	s.player = newPlayer(s.cfg.Player, s.cfg.World, theme.Player)
	s.obstacles = nil
	s.powerups = nil
	s.particles = nil

	s.score = 0
	s.multiplier = 1
	s.shield = false
	s.slowRemaining = 0
	s.multRemaining = 0

	s.spawnTimer = 0
	s.spawnInterval = s.startInterval()
	s.powerupTimer = 0
	s.speedBase = s.difficulty.BaseSpeed(s.cfg.Speed.Base)

	s.clock = 0
	s.ticks = 0
	s.events = s.events[:0]

	s.playing = true
	s.paused = false
	s.roundEnded = false
}

// Tick advances the simulation by dt seconds.
// Order: pause, dash, player, spawn timers, obstacles, power-ups, particles, effect timers.
func (s *Simulation) Tick(dt float64, in Input) {
	s.events = s.events[:0]
	if dt < 0 {
		dt = 0
	}

	if in.Pause && s.playing {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}
	if !s.playing {
		// Let the last burst play out after the round ends.
		s.updateParticles(dt)
		return
	}

	s.clock += dt
	s.ticks++

	if in.Dash && s.player.TryDash(s.clock, in.DashDir) {
		s.emit(core.EventDash, "")
	}
	s.player.update(dt, in.Left, in.Right)

	s.spawnTimer += dt * 1000
	if s.spawnTimer >= s.spawnInterval {
		s.spawnWave()
		s.spawnTimer = 0
		if s.difficulty.Progressive() {
			s.shrinkInterval()
		}
	}

	s.powerupTimer += dt * 1000
	if s.powerupTimer >= s.cfg.PowerUps.IntervalMs {
		s.spawnPowerUp()
		s.powerupTimer = 0
	}

	// power-ups still move and apply on the tick a collision ends the round
	frames := dt * framesPerSecond
	s.updateObstacles(frames * s.MotionScale())
	s.updatePowerUps(frames)
	s.updateParticles(dt)

	if s.playing {
		s.tickEffects(dt)
	}
}

// updateObstacles moves, scores and collides obstacles. At most one
// collision is resolved per tick; obstacles after it are left untouched.
func (s *Simulation) updateObstacles(frames float64) {
	exit := s.cfg.World.Height + s.cfg.Obstacles.ExitMargin
	pr := s.player.Rect()

	kept := s.obstacles[:0]
	collided := false
	for _, o := range s.obstacles {
		if collided {
			kept = append(kept, o)
			continue
		}

		o.move(frames, s.cfg.Obstacles.SwayScale)
		if o.Y > exit {
			s.score += s.multiplier
			s.emit(core.EventScore, "")
			continue
		}

		if o.Rect().Intersects(pr) {
			collided = true
			if fatal := s.resolveCollision(); !fatal {
				// absorbed: the block is destroyed so it cannot hit again
				continue
			}
		}
		kept = append(kept, o)
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
}

// resolveCollision consumes the shield or ends the round.
func (s *Simulation) resolveCollision() bool {
	cx, cy := s.player.Center()
	if s.shield {
		s.shield = false
		s.burst(cx, cy, s.cfg.Particles.ShieldBurst)
		s.emit(core.EventShieldBreak, "")
		return false
	}

	s.burst(cx, cy, s.cfg.Particles.FatalBurst)
	s.playing = false
	s.roundEnded = true
	s.emit(core.EventHit, "")
	return true
}

// updatePowerUps moves power-ups and applies every one touching the player.
// Slow does not affect power-ups.
func (s *Simulation) updatePowerUps(frames float64) {
	exit := s.cfg.World.Height + s.cfg.PowerUps.ExitMargin
	pr := s.player.Rect()

	kept := s.powerups[:0]
	for _, p := range s.powerups {
		p.Y += p.Speed * frames
		if p.Y > exit {
			continue
		}
		if p.Rect().Intersects(pr) {
			s.ApplyPowerUp(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.powerups[len(kept):])
	s.powerups = kept
}

// tickEffects counts timed effects down, clamping at zero.
func (s *Simulation) tickEffects(dt float64) {
	if s.slowRemaining > 0 {
		s.slowRemaining = max(0, s.slowRemaining-dt)
	}
	if s.multRemaining > 0 {
		s.multRemaining = max(0, s.multRemaining-dt)
		if s.multRemaining == 0 {
			s.multiplier = 1
		}
	}
}

func (s *Simulation) emit(t core.EventType, detail string) {
	s.events = append(s.events, core.Event{Type: t, Detail: detail})
}

// RecordResult ranks a finished round and forwards it to the recorder.
// The in-memory list is updated even if persisting fails.
func (s *Simulation) RecordResult(name string, score int) error {
	name = NormalizeName(name)
	s.board.Add(name, score)
	if s.recorder == nil {
		return nil
	}
	return s.recorder.RecordResult(name, score)
}

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Player returns the paddle. Callers must treat it as read-only.
func (s *Simulation) Player() *Player { return s.player }

// Obstacles returns the live obstacles. Callers must treat them as read-only.
func (s *Simulation) Obstacles() []*Obstacle { return s.obstacles }

// PowerUps returns the live power-ups. Callers must treat them as read-only.
func (s *Simulation) PowerUps() []*PowerUp { return s.powerups }

// Particles returns the live particles. Callers must treat them as read-only.
func (s *Simulation) Particles() []*Particle { return s.particles }

// Shield reports whether the next hit will be absorbed.
func (s *Simulation) Shield() bool { return s.shield }

// SlowRemaining returns seconds left on the slow effect.
func (s *Simulation) SlowRemaining() float64 { return s.slowRemaining }

// MultRemaining returns seconds left on the score multiplier.
func (s *Simulation) MultRemaining() float64 { return s.multRemaining }

// Multiplier returns points awarded per passed obstacle.
func (s *Simulation) Multiplier() int { return s.multiplier }

// MotionScale is the obstacle speed factor: SlowFactor while slowed, else 1.
func (s *Simulation) MotionScale() float64 {
	if s.slowRemaining > 0 {
		return s.cfg.PowerUps.SlowFactor
	}
	return 1.0
}

// RoundEnded reports whether a fatal collision ended the session.
func (s *Simulation) RoundEnded() bool { return s.roundEnded }

// Playing reports whether the session is live.
func (s *Simulation) Playing() bool { return s.playing }

// Paused reports whether ticks are currently ignored.
func (s *Simulation) Paused() bool { return s.paused }

// SpawnInterval returns the current wave interval in milliseconds.
func (s *Simulation) SpawnInterval() float64 { return s.spawnInterval }

// Clock returns seconds of simulated play since StartSession.
func (s *Simulation) Clock() float64 { return s.clock }

// Events returns what happened during the last tick.
func (s *Simulation) Events() []core.Event { return s.events }

// Theme returns the active palette.
func (s *Simulation) Theme() Theme { return s.theme }

// Best returns the top leaderboard score.
func (s *Simulation) Best() int { return s.board.Best() }

// Leaderboard returns the ranked snapshot.
func (s *Simulation) Leaderboard() []Entry { return s.board.Entries() }

// Config returns the tuning in use.
func (s *Simulation) Config() config.AvoidConfig { return s.cfg }
