package shaperun

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/shaperun/internal/config"
	"github.com/vovakirdan/shaperun/internal/core"
)

// TickResult tells the scheduler whether to run another tick.
type TickResult int

const (
	Continue TickResult = iota
	Stop
)

// Loop drives a session through Idle -> Running -> GameOver -> Running.
// It is not safe for concurrent use; ticks and input must be serialised
// by the caller, as Bubble Tea and Ebitengine both do.
type Loop struct {
	cfg    config.ShapeRunConfig
	rng    *rand.Rand
	clock  core.Clock
	phase  core.Phase
	paused bool
	world  *World
	endAt  time.Time // Set when the session ends, freezes Elapsed
}

// NewLoop creates a loop in the Idle phase.
func NewLoop(cfg config.ShapeRunConfig, rng *rand.Rand, clock core.Clock) *Loop {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Loop{
		cfg:   cfg,
		rng:   rng,
		clock: clock,
		phase: core.PhaseIdle,
	}
}

// Start begins the first session. It only has an effect while Idle.
func (l *Loop) Start() bool {
	if l.phase != core.PhaseIdle {
		return false
	}
	l.begin()
	return true
}

// Restart begins a fresh session after game over.
func (l *Loop) Restart() bool {
	if l.phase != core.PhaseGameOver {
		return false
	}
	l.begin()
	return true
}

func (l *Loop) begin() {
	l.world = NewWorld(l.cfg, l.rng, l.clock.Now())
	l.phase = core.PhaseRunning
	l.paused = false
	l.endAt = time.Time{}
}

// Jump makes the player jump. Ignored unless a session is running and unpaused.
func (l *Loop) Jump() bool {
	if l.phase != core.PhaseRunning || l.paused {
		return false
	}
	l.world.Player.Jump()
	return true
}

// TogglePause pauses or resumes a running session.
func (l *Loop) TogglePause() bool {
	if l.phase != core.PhaseRunning {
		return false
	}
	l.paused = !l.paused
	return true
}

// Tick advances a running session by one frame. It returns Stop once the
// session is over (including the tick on which the collision happened) and
// whenever there is no running session.
func (l *Loop) Tick() TickResult {
	if l.phase != core.PhaseRunning {
		return Stop
	}
	if l.paused {
		return Continue
	}

	if l.world.Advance() {
		l.phase = core.PhaseGameOver
		l.endAt = l.clock.Now()
		return Stop
	}
	return Continue
}

// Phase returns the current lifecycle phase.
func (l *Loop) Phase() core.Phase {
	return l.phase
}

// Paused reports whether the running session is paused.
func (l *Loop) Paused() bool {
	return l.paused
}

// World returns the current session, or nil while Idle.
func (l *Loop) World() *World {
	return l.world
}

// Score returns the current session score, 0 while Idle.
func (l *Loop) Score() int {
	if l.world == nil {
		return 0
	}
	return l.world.Score
}

// Elapsed returns the session's wall-clock duration, frozen at game over.
func (l *Loop) Elapsed() time.Duration {
	if l.world == nil {
		return 0
	}
	end := l.endAt
	if end.IsZero() {
		end = l.clock.Now()
	}
	return end.Sub(l.world.StartedAt)
}
