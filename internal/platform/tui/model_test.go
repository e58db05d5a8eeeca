package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shaperun/internal/config"
	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/games/shaperun"
	"github.com/vovakirdan/shaperun/internal/storage"
)

func newTestModel(t *testing.T) (GameModel, *shaperun.Game, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := shaperun.New(shaperun.WithConfig(config.DefaultShapeRunConfig()))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}
	m := NewGameModel(game, store, cfg, nil)
	m.Init()
	return m, game, store
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

// crashNow covers the player's column with an obstacle.
func crashNow(game *shaperun.Game) {
	w := game.Loop().World()
	w.Obstacles = []shaperun.Obstacle{{X: w.Player.X + 5, Y: 0, Width: w.Player.Size, Height: 600}}
}

func TestModelIdleDoesNotTick(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := send(t, m, runeKey('w'))
	if cmd != nil || m.Ticking() {
		t.Error("Jump on the title screen should not start ticking")
	}

	m, cmd = send(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("Stray tick should be ignored while idle")
	}
	if m.State().Phase != core.PhaseIdle {
		t.Errorf("Expected Idle, got %v", m.State().Phase)
	}
}

func TestModelStartTicks(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.Ticking() {
		t.Fatal("Expected Start to schedule a tick")
	}
	if m.State().Phase != core.PhaseRunning || m.State().Score != 1 {
		t.Fatalf("Expected Running with score 1, got %+v", m.State())
	}

	m, cmd = send(t, m, TickMsg(time.Now()))
	if cmd == nil || m.State().Score != 2 {
		t.Errorf("Expected tick to advance, got %+v", m.State())
	}
}

func TestModelGameOverStopsAndSaves(t *testing.T) {
	m, game, store := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg(time.Now()))

	crashNow(game)
	m, cmd := send(t, m, TickMsg(time.Now()))
	if cmd != nil || m.Ticking() {
		t.Fatal("Expected ticking to stop at game over")
	}
	if !m.State().GameOver {
		t.Fatalf("Expected game over, got %+v", m.State())
	}
	score := m.State().Score

	m, _ = send(t, m, TickMsg(time.Now()))
	if m.State().Score != score {
		t.Errorf("Score changed after game over")
	}

	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != score {
		t.Fatalf("Expected one saved score of %d, got %+v", score, scores)
	}

	m, cmd = send(t, m, runeKey('r'))
	if cmd == nil || m.State().Phase != core.PhaseRunning || m.State().Score != 1 {
		t.Errorf("Expected restart to resume ticking, got %+v", m.State())
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	m, game, _ := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Back should be ignored during play")
	}

	crashNow(game)
	m, _ = send(t, m, TickMsg(time.Now()))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Expected back to menu after game over")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Error("Expected quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	if !strings.Contains(m.View(), "SHAPE RUN") {
		t.Error("Expected title screen in view")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.View(), "Score: 1") {
		t.Error("Expected HUD in view after resize")
	}
}

func TestPainterKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.FillBackground(core.ColorLightBlue)
	s.DrawText(1, 0, "Score: 7", core.ColorInk)
	s.SetCell(0, 1, core.FillRune, core.ColorLightGreen)

	out := NewPainter(nil).Render(s)
	if !strings.Contains(out, "Score: 7") {
		t.Errorf("Expected text to survive styling, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 rows, got %q", out)
	}
}
