// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the hosts
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every simulation core implements.
// Games contain pure logic with no host dependencies: the session
// controller owns timing and the hosts own drawing.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// TickInterval is the fixed rate at which Step must be called.
	TickInterval() time.Duration

	// Reset discards all state and starts a fresh round.
	Reset(cfg core.RuntimeConfig)

	// Apply feeds one intent. Immediate intents (snake turns, tetris
	// moves, invaders shots) take effect here; held movement is latched
	// until the next Step.
	Apply(in core.Intent)

	// Step advances the simulation by one tick. A terminated game
	// ignores further steps.
	Step() core.StepResult

	// State returns the current score and status.
	State() core.GameState

	// Snapshot returns a deep copy of the full serializable state.
	Snapshot() core.Snapshot

	// Frame projects the current state to draw primitives.
	Frame() render.Frame
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance from the loaded configuration.
type Factory func(cfg config.Arcade) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(config.Defaults()).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string, cfg config.Arcade) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a game; used by tests that register fakes.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
	delete(titles, id)
}
