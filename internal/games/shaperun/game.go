// Package shaperun implements Shape Run, a side-scroller where a rotating
// shape jumps over rectangles that scroll in from the right.
package shaperun

import (
	"math/rand"

	"github.com/vovakirdan/shaperun/internal/config"
	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/registry"
)

// Registry identifiers and titles.
const (
	GameID        = "shaperun"
	EndlessGameID = "shaperun_endless"

	gameTitle        = "Shape Run"
	endlessGameTitle = "Shape Run (Endless)"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration the CLI flags select.
func LoadConfig() (config.ShapeRunConfig, error) {
	cfg, err := config.Load(configPath)
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game adapts a Loop to the platform's registry.Game interface.
type Game struct {
	id      string
	title   string
	endless bool
	clock   core.Clock
	fixed   *config.ShapeRunConfig // Bypasses file loading when set
	cfg     config.ShapeRunConfig
	runtime core.RuntimeConfig
	loop    *Loop
}

// Option customizes a Game.
type Option func(*Game)

// WithClock sets the clock used for the elapsed-time display.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithConfig uses cfg instead of loading configuration files.
func WithConfig(cfg config.ShapeRunConfig) Option {
	return func(g *Game) { g.fixed = &cfg }
}

// New creates a Shape Run game with a single batch of obstacles.
func New(opts ...Option) *Game {
	g := &Game{id: GameID, title: gameTitle, clock: core.SystemClock{}}
	for _, opt := range opts {
		opt(g)
	}
	g.cfg = g.resolveConfig()
	return g
}

// NewEndless creates the variant that keeps spawning obstacles.
func NewEndless(opts ...Option) *Game {
	g := New(opts...)
	g.id = EndlessGameID
	g.title = endlessGameTitle
	g.endless = true
	g.cfg.Obstacles.Respawn = true
	return g
}

func (g *Game) resolveConfig() config.ShapeRunConfig {
	var cfg config.ShapeRunConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		// Load errors fall back to defaults, as the other loaders do.
		cfg, _ = LoadConfig()
	}
	if g.endless {
		cfg.Obstacles.Respawn = true
	}
	return cfg
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Viewport returns the logical playfield size.
func (g *Game) Viewport() (float64, float64) {
	return g.cfg.Viewport.Width, g.cfg.Viewport.Height
}

// Config returns the configuration in use.
func (g *Game) Config() config.ShapeRunConfig {
	return g.cfg
}

// Loop exposes the underlying session loop.
func (g *Game) Loop() *Loop {
	return g.loop
}

// Reset reloads configuration and returns the game to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.resolveConfig()
	g.loop = NewLoop(g.cfg, rand.New(rand.NewSource(runtime.Seed)), g.clock)
}

// Step applies this frame's input, then ticks once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.loop == nil {
		g.Reset(g.runtime)
	}

	switch g.loop.Phase() {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.loop.Start()
		}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			g.loop.Restart()
		}
	case core.PhaseRunning:
		if in.Has(core.ActionPause) {
			g.loop.TogglePause()
		}
		if in.Has(core.ActionJump) {
			g.loop.Jump()
		}
	}

	result := g.loop.Tick()
	return core.StepResult{
		State:    g.State(),
		Continue: result == Continue,
	}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Canvas) {
	if g.loop == nil {
		g.Reset(g.runtime)
	}
	g.loop.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.loop == nil {
		return core.GameState{Phase: core.PhaseIdle}
	}
	return core.GameState{
		Score:    g.loop.Score(),
		GameOver: g.loop.Phase() == core.PhaseGameOver,
		Paused:   g.loop.Paused(),
		Phase:    g.loop.Phase(),
		Elapsed:  g.loop.Elapsed(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, gameTitle, func() registry.Game {
		return New()
	})
	registry.Register(EndlessGameID, endlessGameTitle, func() registry.Game {
		return NewEndless()
	})
}
