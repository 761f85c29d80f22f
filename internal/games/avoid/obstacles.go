package avoid

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// obstacleBase is the block color before the per-instance tint.
var obstacleBase = [3]int{230, 80, 100}

// Obstacle is a falling block. Touching it ends the round unless shielded.
type Obstacle struct {
	X, Y  float64
	W, H  int
	Speed float64 // units per 60 Hz frame
	Sway  float64 // horizontal drift rate
	Color core.Color
}

// Rect returns the obstacle's hitbox.
func (o *Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, float64(o.W), float64(o.H))
}

func (o *Obstacle) move(frames, swayScale float64) {
	o.Y += o.Speed * frames
	o.X += o.Sway * frames * swayScale
}

// randRange returns an integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// uniform returns a float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// waveCap is the largest wave allowed at the current score.
func (s *Simulation) waveCap() int {
	oc := s.cfg.Obstacles
	return min(oc.MaxPerWave, 1+s.score/oc.WaveGrowthEvery)
}

// obstacleSpeed is the fall speed for a newly spawned obstacle.
func (s *Simulation) obstacleSpeed() float64 {
	return s.speedBase + float64(s.score)*s.cfg.Speed.PerScore + s.rng.Float64()*s.cfg.Speed.Jitter
}

func (s *Simulation) newObstacle() *Obstacle {
	oc := s.cfg.Obstacles
	w := randRange(s.rng, oc.MinWidth, oc.MaxWidth)
	h := randRange(s.rng, oc.MinHeight, oc.MaxHeight)
	left := int(s.cfg.Player.MarginLeft)
	right := int(s.cfg.World.Width-s.cfg.Player.MarginRight) - w
	x := randRange(s.rng, left, right)
	speed := s.obstacleSpeed()

	tint := randRange(s.rng, -15, 15)
	return &Obstacle{
		X:     float64(x),
		Y:     float64(-h - randRange(s.rng, 0, oc.SpawnOffset)),
		W:     w,
		H:     h,
		Speed: speed,
		Sway:  uniform(s.rng, -oc.SwayRange, oc.SwayRange),
		Color: core.RGB(obstacleBase[0]+tint, obstacleBase[1]+tint, obstacleBase[2]+tint),
	}
}

// overlaps applies the spacing heuristic: a candidate is rejected if an
// existing obstacle is within half the combined width horizontally and
// the overlap window vertically.
func (s *Simulation) overlaps(c *Obstacle) bool {
	for _, o := range s.obstacles {
		if math.Abs(o.X-c.X) < float64(o.W+c.W)*0.5 && math.Abs(o.Y-c.Y) < s.cfg.Obstacles.OverlapDistance {
			return true
		}
	}
	return false
}

// spawnWave adds up to N obstacles. Placement is best effort: candidates
// that fail the spacing check are retried until the attempt budget runs
// out, and whatever is still unplaced is dropped.
func (s *Simulation) spawnWave() int {
	n := randRange(s.rng, 1, s.waveCap())
	placed := 0
	for attempt := 0; attempt < s.cfg.Obstacles.PlacementAttempts && placed < n; attempt++ {
		o := s.newObstacle()
		if s.overlaps(o) {
			continue
		}
		s.obstacles = append(s.obstacles, o)
		placed++
	}
	return placed
}

// shrinkInterval tightens the wave timer after each wave.
func (s *Simulation) shrinkInterval() {
	sc := s.cfg.Spawn
	next := s.spawnInterval - float64(randRange(s.rng, sc.ShrinkMin, sc.ShrinkMax)) - float64(s.score/sc.ShrinkScoreDivisor)
	s.spawnInterval = math.Max(sc.MinIntervalMs, math.Min(s.spawnInterval, next))
}
