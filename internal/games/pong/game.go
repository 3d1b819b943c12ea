// Package pong implements Pong against a CPU paddle.
// The player controls the left paddle, the CPU tracks the ball with
// the right one; the first side to the win score ends the round.
package pong

import (
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// ID is the registry identifier.
const ID = "pong"

// Game adapts the Pong state machine to registry.Game.
type Game struct {
	cfg   config.PongConfig
	rng   core.Rand
	state State
}

// New creates a Pong game ready to play with seed 0.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.RuntimeConfig{})
	return g
}

func init() {
	registry.Register(ID, func(cfg config.Arcade) registry.Game {
		return New(cfg.Pong)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// TickInterval returns the configured step rate.
func (g *Game) TickInterval() time.Duration { return g.cfg.Tick() }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rc.Source()
	g.state = NewState(g.cfg, g.rng)
}

// Apply latches held paddle movement until the matching release.
func (g *Game) Apply(in core.Intent) {
	if in.Kind == core.IntentMove && g.state.Status == core.StatusRunning {
		Hold(&g.state, in.Dir, in.Active)
	}
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	return Step(&g.state, g.cfg, g.rng)
}

// State returns the player's score and status.
func (g *Game) State() core.GameState {
	return g.state.gameState()
}

// OpponentScore returns the CPU's points for the HUD.
func (g *Game) OpponentScore() int {
	return g.state.OpponentScore
}

// Snapshot returns a copy of the state.
func (g *Game) Snapshot() core.Snapshot {
	return g.state
}

// Frame projects the current state.
func (g *Game) Frame() render.Frame {
	return Project(g.state)
}
