package shaperun

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/shaperun/internal/config"
)

// World is the state of one session: the player, the live obstacles and the score.
type World struct {
	Player    *Player
	Obstacles []Obstacle
	Score     int // Points; one per completed running tick
	Ticks     int // Completed running ticks
	StartedAt time.Time
	GameOver  bool

	cfg     config.ShapeRunConfig
	spawner *Spawner
}

// NewWorld initializes a session. The player's shape is drawn from rng
// before the obstacle batch.
func NewWorld(cfg config.ShapeRunConfig, rng *rand.Rand, startedAt time.Time) *World {
	w := &World{
		Player:    NewPlayer(cfg, rng),
		StartedAt: startedAt,
		cfg:       cfg,
		spawner:   NewSpawner(cfg, rng),
	}
	w.Obstacles = w.spawner.Batch()
	return w
}

// Floor returns the largest player Y.
func (w *World) Floor() float64 {
	return w.cfg.Floor()
}

// Advance runs one tick of simulation and reports whether a collision fired.
// The tick always completes: every obstacle moves, culling happens and the
// score increments even on the colliding tick.
func (w *World) Advance() bool {
	w.Player.Update(w.Floor())

	player := w.Player.Bounds()
	collided := false
	for i := range w.Obstacles {
		w.Obstacles[i].Update(w.cfg.Obstacles.Speed)
		if player.Intersects(w.Obstacles[i].Bounds()) {
			collided = true
		}
	}

	live := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if !o.Offscreen() {
			live = append(live, o)
		}
	}
	w.Obstacles = w.spawner.Refill(live)

	w.Score++
	w.Ticks++
	if collided {
		w.GameOver = true
	}
	return collided
}
