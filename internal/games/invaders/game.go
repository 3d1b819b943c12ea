// Package invaders implements Space Invaders: a marching enemy formation
// that speeds up on every reversal, player and enemy projectiles, and
// lives.
package invaders

import (
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// ID is the registry identifier.
const ID = "invaders"

// Game adapts the Invaders state machine to registry.Game.
type Game struct {
	cfg   config.InvadersConfig
	rng   core.Rand
	state State
}

// New creates an Invaders game ready to play with seed 0.
func New(cfg config.InvadersConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.RuntimeConfig{})
	return g
}

func init() {
	registry.Register(ID, func(cfg config.Arcade) registry.Game {
		return New(cfg.Invaders)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// TickInterval returns the configured step rate.
func (g *Game) TickInterval() time.Duration { return g.cfg.Tick() }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rc.Source()
	g.state = NewState(g.cfg)
}

// Apply latches held movement and fires immediately on shoot.
func (g *Game) Apply(in core.Intent) {
	if g.state.Status != core.StatusRunning {
		return
	}
	switch in.Kind {
	case core.IntentMove:
		Hold(&g.state, in.Dir, in.Active)
	case core.IntentShoot:
		if in.Active {
			Shoot(&g.state, g.cfg)
		}
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

// Lives returns the remaining lives for the HUD.
func (g *Game) Lives() int {
	return g.state.Lives
}

// Snapshot returns a deep copy of the state.
func (g *Game) Snapshot() core.Snapshot {
	return g.state.Clone()
}

// Frame projects the current state.
func (g *Game) Frame() render.Frame {
	return Project(g.state)
}
