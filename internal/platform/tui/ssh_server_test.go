package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/games/shaperun"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewSessionModel(nil, cfg, NewPainter(nil), log.New(io.Discard))
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("Expected game screen, got %v", m.screen)
	}

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || m.gameModel.State().Phase != core.PhaseRunning {
		t.Fatalf("Expected running game, got %+v", m.gameModel.State())
	}

	game, ok := m.gameModel.game.(*shaperun.Game)
	if !ok {
		t.Fatalf("Unexpected game type %T", m.gameModel.game)
	}
	crashNow(game)
	m, _ = updateSession(t, m, TickMsg(time.Now()))
	if !m.gameModel.State().GameOver {
		t.Fatalf("Expected game over, got %+v", m.gameModel.State())
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Errorf("Expected return to the menu, screen=%v quitting=%v", m.screen, m.quitting)
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := newTestSession()

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("Expected scoreboard, got %v", m.screen)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("Expected return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := updateSession(t, m, runeKey('q'))
	if cmd == nil || !m.quitting || m.View() != "" {
		t.Error("Expected q to end the session")
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := newTestSession()
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 132, Height: 43})
	if m.config.ScreenW != 132 || m.config.ScreenH != 43 {
		t.Errorf("Expected resized config, got %+v", m.config)
	}
}
