package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/registry"
	"github.com/vovakirdan/shaperun/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game.
// Ticks are only scheduled while the game asks for them, so the title and
// game-over screens cost nothing until a start or restart key arrives.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *core.CellCanvas
	painter    *Painter
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	ticking    bool
	quitOnBack bool // Standalone programs exit instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewGameModel creates a model for game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	w, h := game.Viewport()

	return GameModel{
		game:       game,
		screen:     screen,
		canvas:     core.NewCellCanvas(screen, w, h),
		painter:    NewPainter(nil),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithPainter returns a copy of m that styles output with p.
func (m GameModel) WithPainter(p *Painter) GameModel {
	m.painter = p
	return m
}

// Init resets the game to its title screen. No tick is scheduled yet.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// The playfield is logical, so a resize only rescales the canvas.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.ticking {
			return m, nil
		}
		return m.step()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		if err := m.saveScreenshot(); err != nil && m.logger != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if m.gameState.Phase != core.PhaseRunning || m.gameState.Paused {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.inputFrame.Set(action)

	// Outside a running session nothing is ticking, so a start or restart
	// key has to drive the first step itself.
	if !m.ticking && (action == core.ActionStart || action == core.ActionRestart) {
		return m.step()
	}
	return m, nil
}

// step runs one simulation step with the buffered input.
func (m GameModel) step() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.gameState.Phase == core.PhaseRunning {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.ticking = result.Continue
	if !m.ticking {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Elapsed)
	if err != nil && m.logger != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	if m.logger != nil {
		m.logger.Debug("score saved", "game", m.game.ID(), "score", m.gameState.Score, "elapsed", m.gameState.Elapsed)
	}
}

// saveScreenshot saves the current screen to ~/.shaperun/screenshots.
func (m GameModel) saveScreenshot() error {
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".shaperun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.canvas)
	return m.painter.Render(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Ticking reports whether a tick is scheduled.
func (m GameModel) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for game.
// It returns true when the player asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewGameModel(game, store, cfg, nil)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
