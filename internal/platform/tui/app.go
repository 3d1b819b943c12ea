package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/session"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// Options configure an App.
type Options struct {
	Config config.Arcade
	// Store persists journals and backs the replay browser; may be nil.
	Store *storage.Store
	// Logger receives session logs; nil discards them.
	Logger *log.Logger
	// Seed fixes every round's seed when non-zero.
	Seed int64
	// StartGame opens a game directly instead of the menu.
	StartGame string
	Width     int
	Height    int
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenReplays
)

// App manages the full arcade flow: menu -> game -> menu, plus the
// replay browser. It is the top-level model for local and SSH sessions.
type App struct {
	opts     Options
	ctrl     *session.Controller
	screen   screen
	menu     MenuModel
	game     GameModel
	replays  ReplaysModel
	width    int
	height   int
	err      error
	quitting bool
}

// NewApp creates the session controller and the first screen.
func NewApp(opts Options) (App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionOpts := []session.Option{session.WithLogger(logger)}
	if opts.Store != nil {
		sessionOpts = append(sessionOpts, session.WithSaver(opts.Store))
	}
	if opts.Seed != 0 {
		seed := opts.Seed
		sessionOpts = append(sessionOpts, session.WithSeed(func() int64 { return seed }))
	}

	a := App{
		opts:   opts,
		ctrl:   session.New(opts.Config, sessionOpts...),
		width:  opts.Width,
		height: opts.Height,
	}
	a.menu = NewMenuModel(a.bestScores(), a.width, a.height)

	if opts.StartGame != "" {
		game, err := NewGameModel(a.ctrl, opts.StartGame, a.width, a.height)
		if err != nil {
			return App{}, fmt.Errorf("tui: %w", err)
		}
		a.game = game
		a.screen = screenGame
	}
	return a, nil
}

// bestScores reads per-game bests for the menu; failures show none.
func (a App) bestScores() map[string]int {
	if a.opts.Store == nil {
		return nil
	}
	stats, err := a.opts.Store.AllGamesStats()
	if err != nil {
		return nil
	}
	best := make(map[string]int, len(stats))
	for id, s := range stats {
		best[id] = s.HighScore
	}
	return best
}

func (a App) replayStore() ReplayStore {
	if a.opts.Store == nil {
		return nil
	}
	return a.opts.Store
}

// Init initializes the current screen.
func (a App) Init() tea.Cmd {
	if a.screen == screenGame {
		return a.game.Init()
	}
	return a.menu.Init()
}

// Update routes messages to the current screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	switch a.screen {
	case screenGame:
		return a.updateGame(msg)
	case screenReplays:
		return a.updateReplays(msg)
	default:
		return a.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		a.menu = menu
	}

	switch {
	case a.menu.IsQuitting():
		a.quitting = true
		return a, tea.Quit

	case a.menu.WantsReplays():
		a.replays = NewReplaysModel(a.replayStore(), a.width, a.height)
		a.screen = screenReplays
		return a, a.replays.Init()

	case a.menu.Selected() != nil:
		game, err := NewGameModel(a.ctrl, a.menu.Selected().GameID, a.width, a.height)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			a.err = err
			a.menu = NewMenuModel(a.bestScores(), a.width, a.height)
			return a, nil
		}
		a.game = game
		a.screen = screenGame
		return a, a.game.Init()
	}

	return a, cmd
}

// updateGame handles updates when in game mode.
func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		a.game = game
	}

	if a.game.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if a.game.BackToMenu() {
		a.ctrl.ReturnToMenu()
		a.toMenu()
		return a, nil
	}

	return a, cmd
}

// updateReplays handles updates in the replay browser.
func (a App) updateReplays(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.replays.Update(msg)
	if replays, ok := next.(ReplaysModel); ok {
		a.replays = replays
	}

	if a.replays.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.replays.IsGoingBack() {
		a.toMenu()
		return a, nil
	}
	return a, cmd
}

func (a *App) toMenu() {
	a.screen = screenMenu
	a.err = nil
	a.menu = NewMenuModel(a.bestScores(), a.width, a.height)
}

// View renders the current screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenReplays:
		return a.replays.View()
	default:
		view := a.menu.View()
		if a.err != nil {
			view += "\n" + centerText(a.err.Error(), a.width)
		}
		return view
	}
}

// Controller exposes the session controller, mainly for tests.
func (a App) Controller() *session.Controller {
	return a.ctrl
}

// Run starts a full-screen program on the local terminal.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if a, ok := final.(App); ok {
		a.ctrl.Stop()
	}
	return err
}
