package shaperun

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/shaperun/internal/config"
	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(seed int64, opts ...Option) *Game {
	opts = append([]Option{WithConfig(config.DefaultShapeRunConfig())}, opts...)
	g := New(opts...)
	g.Reset(testRuntime(seed))
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{GameID, EndlessGameID} {
		if !registry.Exists(id) {
			t.Errorf("Expected %q to be registered", id)
		}
	}

	titles := map[string]string{
		GameID:        New(WithConfig(config.DefaultShapeRunConfig())).Title(),
		EndlessGameID: NewEndless(WithConfig(config.DefaultShapeRunConfig())).Title(),
	}
	for _, info := range registry.List() {
		if want, ok := titles[info.ID]; ok && info.Title != want {
			t.Errorf("Registered title for %q = %q, want %q", info.ID, info.Title, want)
		}
	}
}

func TestGameIdleUntilStart(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(input(core.ActionJump))
	if res.Continue {
		t.Error("Expected Idle step not to request more ticks")
	}
	if res.State.Phase != core.PhaseIdle {
		t.Fatalf("Expected Idle, got %v", res.State.Phase)
	}

	res = g.Step(input(core.ActionStart))
	if !res.Continue || res.State.Phase != core.PhaseRunning {
		t.Fatalf("Expected Running after Start, got %+v", res)
	}
	if res.State.Score != 1 {
		t.Errorf("Expected the starting step to tick once, got score %d", res.State.Score)
	}
}

func TestGameJumpAction(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionStart))
	y := g.Loop().World().Player.Y

	g.Step(input(core.ActionJump))
	if g.Loop().World().Player.Y >= y {
		t.Errorf("Expected jump to move the player up from %v, got %v", y, g.Loop().World().Player.Y)
	}
}

func TestGameRestartAction(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionStart))
	crash(t, g.Loop())

	res := g.Step(input(core.ActionJump))
	if res.Continue || !res.State.GameOver {
		t.Fatalf("Expected game over to persist on Jump, got %+v", res)
	}

	res = g.Step(input(core.ActionRestart))
	if !res.Continue || res.State.Phase != core.PhaseRunning {
		t.Fatalf("Expected Running after Restart, got %+v", res)
	}
	if res.State.Score != 1 {
		t.Errorf("Expected fresh score after restart, got %d", res.State.Score)
	}
}

func TestGamePauseAction(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionStart))

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused || !res.Continue {
		t.Fatalf("Expected paused and still ticking, got %+v", res)
	}
	score := res.State.Score

	res = g.Step(input())
	if res.State.Score != score {
		t.Errorf("Score advanced while paused: %d -> %d", score, res.State.Score)
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused || res.State.Score != score+1 {
		t.Errorf("Expected resume to tick once, got %+v", res)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(12345)
		g.Step(input(core.ActionStart))
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			if !g.Step(in).Continue {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestGameSeedChangesLayout(t *testing.T) {
	a := newTestGame(1)
	b := newTestGame(2)
	a.Step(input(core.ActionStart))
	b.Step(input(core.ActionStart))

	if reflect.DeepEqual(a.Snapshot().Obstacles, b.Snapshot().Obstacles) {
		t.Error("Expected different seeds to produce different obstacles")
	}
}

func TestEndlessVariant(t *testing.T) {
	g := NewEndless(WithConfig(config.DefaultShapeRunConfig()))
	if g.ID() != EndlessGameID {
		t.Errorf("Expected ID %q, got %q", EndlessGameID, g.ID())
	}
	g.Reset(testRuntime(1))
	if !g.Config().Obstacles.Respawn {
		t.Error("Expected endless variant to respawn obstacles")
	}

	plain := newTestGame(1)
	if plain.Config().Obstacles.Respawn {
		t.Error("Expected default variant to use a single batch")
	}
}

func TestGameViewport(t *testing.T) {
	g := newTestGame(1)
	w, h := g.Viewport()
	if w != 800 || h != 600 {
		t.Errorf("Expected 800x600 viewport, got %vx%v", w, h)
	}
}

func hasText(texts []string, sub string) bool {
	for _, s := range texts {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestRenderPhases(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	g := newTestGame(1, WithClock(clock))
	rec := core.NewRecorder(g.Viewport())

	g.Render(rec)
	if rec.Calls[0].Op != core.OpClear || rec.Calls[0].Color != backgroundColor {
		t.Errorf("Expected frame to start with a background clear, got %+v", rec.Calls[0])
	}
	if !hasText(rec.Texts(), "SHAPE RUN") {
		t.Errorf("Expected title screen, got %v", rec.Texts())
	}

	g.Step(input(core.ActionStart))
	clock.Advance(2500 * time.Millisecond)
	rec.Reset()
	g.Render(rec)
	texts := rec.Texts()
	if !hasText(texts, "Score: 1") || !hasText(texts, "Time: 2") {
		t.Errorf("Expected HUD, got %v", texts)
	}
	if got := rec.Count(core.OpRect); got != len(g.Snapshot().Obstacles) {
		t.Errorf("Expected one rect per obstacle, got %d", got)
	}
	if hasText(texts, "GAME OVER") {
		t.Error("Unexpected game over overlay while running")
	}

	g.Step(input(core.ActionPause))
	rec.Reset()
	g.Render(rec)
	if !hasText(rec.Texts(), "PAUSED") {
		t.Errorf("Expected pause overlay, got %v", rec.Texts())
	}
	g.Step(input(core.ActionPause))

	crash(t, g.Loop())
	rec.Reset()
	g.Render(rec)
	if !hasText(rec.Texts(), "GAME OVER") {
		t.Errorf("Expected game over overlay, got %v", rec.Texts())
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(7)
	g.Step(input(core.ActionStart))
	g.Step(input(core.ActionJump))

	before := g.Snapshot()
	rec := core.NewRecorder(g.Viewport())
	for i := 0; i < 5; i++ {
		g.Render(rec)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Render changed simulation state")
	}
}

func TestRenderOntoScreen(t *testing.T) {
	g := newTestGame(3)
	g.Step(input(core.ActionStart))

	screen := core.NewScreen(80, 24)
	w, h := g.Viewport()
	g.Render(core.NewCellCanvas(screen, w, h))

	if !strings.Contains(screen.String(), "Score: 1") {
		t.Errorf("Expected HUD text on screen:\n%s", screen.String())
	}
	if !strings.ContainsRune(screen.String(), core.FillRune) {
		t.Error("Expected the player to be drawn")
	}
}
