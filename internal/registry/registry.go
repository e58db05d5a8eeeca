// Package registry maps game mode IDs to factories. Game packages register
// their modes in init(), so front ends can list and create them by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/shaperun/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what every front end drives. Implementations hold pure
// simulation state and never touch terminals, windows or clocks directly.
type Game interface {
	// ID is the stable mode identifier used on the command line and as the
	// score storage key, e.g. "shaperun".
	ID() string

	// Title is shown in menus and the scoreboard.
	Title() string

	// Reset discards the current session and returns to the title screen.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input. The platform schedules another tick
	// only while StepResult.Continue is true.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. It must not mutate the game.
	Render(dst core.Canvas)

	State() core.GameState

	// Viewport is the logical playfield size Render draws into.
	Viewport() (w, h float64)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id with its display title. The factory is
// not called until Create. It panics on duplicate IDs.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
