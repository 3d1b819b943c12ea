// Package tetris implements falling-block Tetris on a fixed grid with
// line clears, level progression and gravity that speeds up per level.
package tetris

import (
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// ID is the registry identifier.
const ID = "tetris"

// Game adapts the Tetris state machine to registry.Game.
type Game struct {
	cfg   config.TetrisConfig
	rng   core.Rand
	state State
}

// New creates a Tetris game ready to play with seed 0.
func New(cfg config.TetrisConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.RuntimeConfig{})
	return g
}

func init() {
	registry.Register(ID, func(cfg config.Arcade) registry.Game {
		return New(cfg.Tetris)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// TickInterval returns the configured step rate.
func (g *Game) TickInterval() time.Duration { return g.cfg.Tick() }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rc.Source()
	g.state = NewState(g.cfg, g.rng)
}

// Apply moves or rotates the piece immediately. Up has no meaning.
func (g *Game) Apply(in core.Intent) {
	if !in.Active {
		return
	}
	switch in.Kind {
	case core.IntentMove:
		switch in.Dir {
		case core.DirLeft:
			Move(&g.state, -1, 0)
		case core.DirRight:
			Move(&g.state, 1, 0)
		case core.DirDown:
			Move(&g.state, 0, 1)
		}
	case core.IntentRotate:
		Rotate(&g.state)
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

// Level returns the current level for the HUD.
func (g *Game) Level() int {
	return g.state.Level
}

// Snapshot returns a deep copy of the state.
func (g *Game) Snapshot() core.Snapshot {
	return g.state.Clone()
}

// Frame projects the current state.
func (g *Game) Frame() render.Frame {
	return Project(g.state)
}
