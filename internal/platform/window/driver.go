package window

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/registry"
	"github.com/vovakirdan/shaperun/internal/storage"
)

// driver decides, once per display frame, whether the game steps.
// Ebitengine calls Update at a fixed rate regardless of game phase, so the
// driver only forwards frames while a session is running or when the frame
// carries a start or restart.
type driver struct {
	game       registry.Game
	store      *storage.Store
	logger     *log.Logger
	state      core.GameState
	scoreSaved bool
}

func newDriver(game registry.Game, store *storage.Store, logger *log.Logger) *driver {
	return &driver{
		game:   game,
		store:  store,
		logger: logger,
		state:  game.State(),
	}
}

// Frame applies one frame of input and reports whether the player quit.
func (d *driver) Frame(in core.InputFrame) bool {
	if in.Has(core.ActionQuit) {
		return true
	}

	running := d.state.Phase == core.PhaseRunning
	if !running && !in.Has(core.ActionStart) && !in.Has(core.ActionRestart) {
		return false
	}

	result := d.game.Step(in)
	d.state = result.State

	if d.state.Phase == core.PhaseRunning {
		d.scoreSaved = false
	}
	if d.state.GameOver && !d.scoreSaved {
		d.scoreSaved = true
		d.saveScore()
	}
	return false
}

func (d *driver) saveScore() {
	d.logger.Info("game over", "game", d.game.ID(), "score", d.state.Score, "elapsed", d.state.Elapsed.Round(time.Millisecond))
	if d.store == nil || d.state.Score <= 0 {
		return
	}
	if _, err := d.store.SaveScore(d.game.ID(), d.state.Score, d.state.Elapsed); err != nil {
		d.logger.Error("could not save score", "error", err)
	}
}

// State returns the state observed after the last step.
func (d *driver) State() core.GameState {
	return d.state
}
