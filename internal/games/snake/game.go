// Package snake implements the grid Snake simulation: a head-first
// segment list stepping one tile per tick, growing on food and
// terminating on wall or self collision.
package snake

import (
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// ID is the registry identifier.
const ID = "snake"

// Game adapts the Snake state machine to registry.Game.
type Game struct {
	cfg   config.SnakeConfig
	rng   core.Rand
	state State
}

// New creates a Snake game ready to play with seed 0.
func New(cfg config.SnakeConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.RuntimeConfig{})
	return g
}

func init() {
	registry.Register(ID, func(cfg config.Arcade) registry.Game {
		return New(cfg.Snake)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// TickInterval returns the configured step rate.
func (g *Game) TickInterval() time.Duration { return g.cfg.Tick() }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rc.Source()
	g.state = NewState(g.cfg, g.rng)
}

// Apply turns the snake on a move press. Releases are irrelevant
// because the heading persists.
func (g *Game) Apply(in core.Intent) {
	if in.Kind == core.IntentMove && in.Active {
		Turn(&g.state, in.Dir)
	}
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	return Step(&g.state, g.cfg, g.rng)
}

// State returns the score and status.
func (g *Game) State() core.GameState {
	return g.state.gameState()
}

// Snapshot returns a deep copy of the state.
func (g *Game) Snapshot() core.Snapshot {
	return g.state.Clone()
}

// Frame projects the current state.
func (g *Game) Frame() render.Frame {
	return Project(g.state)
}
