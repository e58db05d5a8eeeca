package shaperun

// Snapshot captures the simulation state for determinism testing and replay.
type Snapshot struct {
	Phase     string
	Paused    bool
	Score     int
	Shape     Shape
	PlayerY   float64
	VelY      float64
	Rotation  float64
	Obstacles []Obstacle
}

// Snapshot returns the current simulation snapshot.
func (l *Loop) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  l.phase.String(),
		Paused: l.paused,
	}
	if l.world == nil {
		return s
	}

	p := l.world.Player
	s.Score = l.world.Score
	s.Shape = p.Shape
	s.PlayerY = p.Y
	s.VelY = p.VelY
	s.Rotation = p.Rotation
	s.Obstacles = append([]Obstacle(nil), l.world.Obstacles...)
	return s
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.loop == nil {
		return Snapshot{Phase: "Idle"}
	}
	return g.loop.Snapshot()
}
