// Package session owns the single active game: it creates and resets
// simulations, gates ticks by generation so a stopped or replaced game
// never steps again, relays lifecycle events, and journals intents.
//
// A Controller is not safe for concurrent use; hosts drive it from one
// goroutine (the bubbletea update loop, the ebiten update loop, or Run).
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render"
	"github.com/vovakirdan/retro-arcade/internal/replay"
)

// Saver persists finished journals.
type Saver interface {
	SaveReplay(log replay.Log) error
}

// Hooks receive lifecycle events as they are produced. Nil hooks are
// skipped.
type Hooks struct {
	OnScore    func(game string, ev core.ScoreChanged)
	OnGameOver func(game string, ev core.GameOver, st core.GameState)
}

// Ticket identifies a started round: ticks must carry its generation.
type Ticket struct {
	Generation uint64
	Interval   time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHooks sets the lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(c *Controller) { c.hooks = h }
}

// WithSaver sets where finished journals go.
func WithSaver(s Saver) Option {
	return func(c *Controller) { c.saver = s }
}

// WithSeed sets the seed source used by Start.
func WithSeed(f func() int64) Option {
	return func(c *Controller) {
		if f != nil {
			c.seed = f
		}
	}
}

// Controller runs at most one game at a time.
type Controller struct {
	cfg    config.Arcade
	logger *log.Logger
	hooks  Hooks
	saver  Saver
	seed   func() int64

	game   registry.Game
	active bool
	gen    uint64
	ticks  int
	rec    *replay.Recorder
	last   *replay.Log
}

// New creates an idle controller.
func New(cfg config.Arcade, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		logger: log.New(io.Discard),
		seed:   func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start replaces any current game with a fresh round of id. The
// previous round is stopped first so its pending ticks are dropped.
func (c *Controller) Start(id string) (Ticket, error) {
	game, err := registry.Create(id, c.cfg)
	if err != nil {
		return Ticket{}, err
	}
	c.Stop()

	seed := c.seed()
	game.Reset(core.RuntimeConfig{Seed: seed})

	c.game = game
	c.active = true
	c.gen++
	c.ticks = 0
	c.rec = replay.NewRecorder(id, seed, c.cfg)

	c.logger.Info("game started", "game", id, "seed", seed, "generation", c.gen)
	return Ticket{Generation: c.gen, Interval: game.TickInterval()}, nil
}

// Restart starts a fresh round of the current game.
func (c *Controller) Restart() (Ticket, error) {
	if c.game == nil {
		return Ticket{}, registry.ErrUnknownGame
	}
	return c.Start(c.game.ID())
}

// Stop cancels the running round. The game is kept, inert, so hosts can
// still draw it.
func (c *Controller) Stop() {
	if c.game == nil {
		return
	}
	if c.active {
		c.active = false
		c.gen++
		c.logger.Info("game stopped", "game", c.game.ID(), "score", c.game.State().Score, "ticks", c.ticks)
		c.finish()
	}
}

// ReturnToMenu stops the round and drops the game.
func (c *Controller) ReturnToMenu() {
	c.Stop()
	c.game = nil
}

// Tick advances the game if gen is the current generation and the round
// is still running; otherwise the tick is stale and dropped.
func (c *Controller) Tick(gen uint64) (core.StepResult, bool) {
	if c.game == nil || !c.active || gen != c.gen {
		c.logger.Debug("stale tick dropped", "generation", gen, "current", c.gen)
		return core.StepResult{}, false
	}

	res := c.game.Step()
	c.ticks++

	for _, ev := range res.Events {
		switch ev := ev.(type) {
		case core.ScoreChanged:
			if c.hooks.OnScore != nil {
				c.hooks.OnScore(c.game.ID(), ev)
			}
		case core.GameOver:
			c.active = false
			c.gen++
			c.logger.Info("game over",
				"game", c.game.ID(),
				"cause", ev.Cause,
				"score", res.State.Score,
				"ticks", c.ticks,
			)
			c.finish()
			if c.hooks.OnGameOver != nil {
				c.hooks.OnGameOver(c.game.ID(), ev, res.State)
			}
		}
	}
	return res, true
}

// Input journals and applies an intent. It reports whether the intent
// reached a running game.
func (c *Controller) Input(in core.Intent) bool {
	if c.game == nil || !c.active || in.IsNone() {
		return false
	}
	c.rec.Record(c.ticks, in)
	c.game.Apply(in)
	return true
}

func (c *Controller) finish() {
	if c.rec == nil {
		return
	}
	journal := c.rec.Finish(c.ticks, c.game.State())
	c.rec = nil
	c.last = &journal

	if c.saver == nil || journal.Ticks == 0 {
		return
	}
	if err := c.saver.SaveReplay(journal); err != nil {
		c.logger.Warn("could not save replay", "id", journal.ID, "error", err)
		return
	}
	c.logger.Debug("replay saved", "id", journal.ID, "entries", len(journal.Entries))
}

// Game returns the current game, or nil at the menu.
func (c *Controller) Game() registry.Game { return c.game }

// Active reports whether a round is running.
func (c *Controller) Active() bool { return c.active }

// Generation returns the current tick generation.
func (c *Controller) Generation() uint64 { return c.gen }

// Ticks returns the number of steps taken this round.
func (c *Controller) Ticks() int { return c.ticks }

// Config returns the configuration games are created with.
func (c *Controller) Config() config.Arcade { return c.cfg }

// Ticket returns the ticket of the running round.
func (c *Controller) Ticket() (Ticket, bool) {
	if !c.active {
		return Ticket{}, false
	}
	return Ticket{Generation: c.gen, Interval: c.game.TickInterval()}, true
}

// State returns the current game's state, or the zero state at the menu.
func (c *Controller) State() core.GameState {
	if c.game == nil {
		return core.GameState{}
	}
	return c.game.State()
}

// Frame projects the current game, or returns an empty frame.
func (c *Controller) Frame() render.Frame {
	if c.game == nil {
		return render.Frame{}
	}
	return c.game.Frame()
}

// LastReplay returns the journal of the most recently finished round.
func (c *Controller) LastReplay() (replay.Log, bool) {
	if c.last == nil {
		return replay.Log{}, false
	}
	return *c.last, true
}
