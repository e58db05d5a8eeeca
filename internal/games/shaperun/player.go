package shaperun

import (
	"math/rand"

	"github.com/vovakirdan/shaperun/internal/config"
	"github.com/vovakirdan/shaperun/internal/core"
)

// Shape is the cosmetic form of the player. Collision always uses the bounding square.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeTriangle
)

var shapes = []Shape{ShapeRect, ShapeCircle, ShapeTriangle}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Player is the falling, jumping shape.
type Player struct {
	X        float64 // Fixed horizontal position
	Y        float64 // Top of the bounding square
	VelY     float64 // Positive = down
	Size     float64
	Shape    Shape
	Rotation float64 // Degrees, only used for drawing

	physics config.Physics
}

// NewPlayer creates the player for a new session, drawing its shape from rng.
func NewPlayer(cfg config.ShapeRunConfig, rng *rand.Rand) *Player {
	return &Player{
		X:       cfg.Player.X,
		Y:       cfg.Viewport.Height - cfg.Player.StartOffset,
		Size:    cfg.Player.Size,
		Shape:   shapes[rng.Intn(len(shapes))],
		physics: cfg.Physics,
	}
}

// Update applies gravity, integrates velocity and clamps to [0, floor].
func (p *Player) Update(floor float64) {
	p.VelY += p.physics.Gravity
	p.Y += p.VelY

	if p.Y > floor {
		p.Y = floor
		p.VelY = 0
	}
	if p.Y < 0 {
		p.Y = 0
		p.VelY = 0
	}

	p.Rotation += p.physics.RotationStep
}

// Jump sets the upward velocity. There is no grounded check.
func (p *Player) Jump() {
	p.VelY = p.physics.JumpVelocity
}

// Bounds returns the collision square.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Draw renders the shape rotated around its center.
func (p *Player) Draw(c core.Canvas) {
	cx, cy := p.Bounds().Center()
	half := p.Size / 2

	switch p.Shape {
	case ShapeCircle:
		c.FillCircle(cx, cy, half, playerColor)
	case ShapeTriangle:
		c.FillPolygon(p.rotate([]core.Point{
			{X: 0, Y: -half},
			{X: -half, Y: half},
			{X: half, Y: half},
		}), playerColor)
	default:
		c.FillPolygon(p.rotate([]core.Point{
			{X: -half, Y: -half},
			{X: half, Y: -half},
			{X: half, Y: half},
			{X: -half, Y: half},
		}), playerColor)
	}
}

// rotate turns center-relative vertices by the current rotation.
func (p *Player) rotate(local []core.Point) []core.Point {
	cx, cy := p.Bounds().Center()
	return core.RotateAround(local, cx, cy, p.Rotation)
}
