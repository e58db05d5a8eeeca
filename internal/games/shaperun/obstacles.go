package shaperun

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/shaperun/internal/config"
	"github.com/vovakirdan/shaperun/internal/core"
)

// Obstacle is a rectangle that always reaches down to the playfield floor.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Update moves the obstacle left. Culling is the caller's job.
func (o *Obstacle) Update(speed float64) {
	o.X -= speed
}

// Offscreen reports whether the obstacle has fully passed the left edge.
func (o Obstacle) Offscreen() bool {
	return o.X+o.Width <= 0
}

// Bounds returns the collision rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Draw renders the obstacle as a filled rectangle.
func (o Obstacle) Draw(c core.Canvas) {
	c.FillRect(o.Bounds(), obstacleColor)
}

// Spawner creates obstacles with randomized tops and widths.
type Spawner struct {
	cfg          config.Obstacles
	viewW, viewH float64
	rng          *rand.Rand
}

// NewSpawner creates a spawner for the given config.
func NewSpawner(cfg config.ShapeRunConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:   cfg.Obstacles,
		viewW: cfg.Viewport.Width,
		viewH: cfg.Viewport.Height,
		rng:   rng,
	}
}

// Spawn creates one obstacle at x. Its top lies in [BandTop, viewH) and its
// height reaches the floor.
func (s *Spawner) Spawn(x float64) Obstacle {
	y := s.rng.Float64()*(s.viewH-s.cfg.BandTop) + s.cfg.BandTop
	width := s.rng.Float64()*s.cfg.WidthRange + s.cfg.MinWidth
	return Obstacle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: s.viewH - y,
	}
}

// Batch creates the session's initial obstacles, spaced off the right edge.
func (s *Spawner) Batch() []Obstacle {
	obstacles := make([]Obstacle, 0, s.cfg.Count)
	for i := 0; i < s.cfg.Count; i++ {
		obstacles = append(obstacles, s.Spawn(s.viewW+float64(i)*s.cfg.Spacing))
	}
	return obstacles
}

// Refill tops the set back up to Count when respawning is enabled.
// New obstacles queue behind the rightmost one, never on screen.
func (s *Spawner) Refill(obstacles []Obstacle) []Obstacle {
	if !s.cfg.Respawn {
		return obstacles
	}
	for len(obstacles) < s.cfg.Count {
		x := s.viewW
		if n := len(obstacles); n > 0 {
			x = math.Max(x, obstacles[n-1].X+s.cfg.Spacing)
		}
		obstacles = append(obstacles, s.Spawn(x))
	}
	return obstacles
}
