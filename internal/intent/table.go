package intent

import (
	"math"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/invaders"
	"github.com/vovakirdan/retro-arcade/internal/games/pong"
	"github.com/vovakirdan/retro-arcade/internal/games/snake"
	"github.com/vovakirdan/retro-arcade/internal/games/tetris"
)

// Binding ties keys and on-screen controls to one intent.
type Binding struct {
	Key      key.Binding
	Controls []string
	Intent   core.Intent
	// Held bindings latch on press and emit a release on key or touch up.
	Held bool
}

// Table is the binding set of one game.
type Table struct {
	Bindings []Binding
	// Swipes enables dominant-axis swipe gestures mapped to moves.
	Swipes bool
}

// Map translates a raw event to an intent. ok is false when the event
// means nothing to this game.
func (t Table) Map(ev RawEvent) (core.Intent, bool) {
	switch ev.Type {
	case KeyDown:
		if b, found := t.byKey(ev); found {
			return b.Intent, true
		}
	case KeyUp:
		if b, found := t.byKey(ev); found && b.Held {
			return release(b.Intent), true
		}
	case TouchStart:
		if b, found := t.byControl(ev.Control); found {
			return b.Intent, true
		}
	case Click:
		if b, found := t.byControl(ev.Control); found && !b.Held {
			return b.Intent, true
		}
	case TouchEnd:
		if b, found := t.byControl(ev.Control); found && b.Held {
			return release(b.Intent), true
		}
	case Swipe:
		if t.Swipes {
			return swipe(ev.DX, ev.DY)
		}
	}
	return core.Intent{}, false
}

func (t Table) byKey(ev RawEvent) (Binding, bool) {
	for _, b := range t.Bindings {
		if key.Matches(ev, b.Key) {
			return b, true
		}
	}
	return Binding{}, false
}

func (t Table) byControl(name string) (Binding, bool) {
	if name == "" {
		return Binding{}, false
	}
	for _, b := range t.Bindings {
		for _, c := range b.Controls {
			if c == name {
				return b, true
			}
		}
	}
	return Binding{}, false
}

// Held reports whether a press intent belongs to a held binding.
func (t Table) Held(in core.Intent) bool {
	for _, b := range t.Bindings {
		if b.Held && b.Intent.Kind == in.Kind && b.Intent.Dir == in.Dir {
			return true
		}
	}
	return false
}

// ShortHelp implements help.KeyMap.
func (t Table) ShortHelp() []key.Binding {
	keys := make([]key.Binding, 0, len(t.Bindings))
	for _, b := range t.Bindings {
		keys = append(keys, b.Key)
	}
	return keys
}

// FullHelp implements help.KeyMap.
func (t Table) FullHelp() [][]key.Binding {
	return [][]key.Binding{t.ShortHelp()}
}

func release(in core.Intent) core.Intent {
	in.Active = false
	return in
}

// swipe picks the dominant axis and requires it to exceed the threshold.
func swipe(dx, dy float64) (core.Intent, bool) {
	if math.Abs(dx) > math.Abs(dy) {
		switch {
		case dx < -SwipeThreshold:
			return core.Move(core.DirLeft), true
		case dx > SwipeThreshold:
			return core.Move(core.DirRight), true
		}
		return core.Intent{}, false
	}
	switch {
	case dy < -SwipeThreshold:
		return core.Move(core.DirUp), true
	case dy > SwipeThreshold:
		return core.Move(core.DirDown), true
	}
	return core.Intent{}, false
}

func bind(keys []string, help, desc string, in core.Intent, controls ...string) Binding {
	return Binding{
		Key:      key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		Controls: controls,
		Intent:   in,
	}
}

func held(b Binding) Binding {
	b.Held = true
	return b
}

var tables = map[string]Table{
	snake.ID: {
		Bindings: []Binding{
			bind([]string{"up"}, "↑", "up", core.Move(core.DirUp), ControlUp),
			bind([]string{"down"}, "↓", "down", core.Move(core.DirDown), ControlDown),
			bind([]string{"left"}, "←", "left", core.Move(core.DirLeft), ControlLeft),
			bind([]string{"right"}, "→", "right", core.Move(core.DirRight), ControlRight),
		},
		Swipes: true,
	},
	pong.ID: {
		Bindings: []Binding{
			held(bind([]string{"w"}, "w", "paddle up", core.Move(core.DirUp), ControlUp)),
			held(bind([]string{"s"}, "s", "paddle down", core.Move(core.DirDown), ControlDown)),
		},
	},
	tetris.ID: {
		Bindings: []Binding{
			bind([]string{"left"}, "←", "left", core.Move(core.DirLeft), ControlLeft),
			bind([]string{"right"}, "→", "right", core.Move(core.DirRight), ControlRight),
			bind([]string{"down"}, "↓", "drop", core.Move(core.DirDown), ControlDown),
			bind([]string{"a"}, "a", "rotate left", core.Rotate(-1), ControlRotateLeft),
			bind([]string{"d"}, "d", "rotate right", core.Rotate(1), ControlRotateRight),
		},
	},
	invaders.ID: {
		Bindings: []Binding{
			held(bind([]string{"left"}, "←", "left", core.Move(core.DirLeft), ControlLeft)),
			held(bind([]string{"right"}, "→", "right", core.Move(core.DirRight), ControlRight)),
			bind([]string{"space"}, "space", "shoot", core.Shoot(), ControlShoot),
		},
	},
}

// For returns the binding table of a game.
func For(gameID string) (Table, bool) {
	t, ok := tables[gameID]
	return t, ok
}

// Map translates a raw event for the given game.
func Map(gameID string, ev RawEvent) (core.Intent, bool) {
	t, ok := tables[gameID]
	if !ok {
		return core.Intent{}, false
	}
	return t.Map(ev)
}

// Releases returns the release intents of every held binding of a game.
// Hosts without key-up events send them after a key-repeat window.
func Releases(gameID string) []core.Intent {
	var out []core.Intent
	for _, b := range tables[gameID].Bindings {
		if b.Held {
			out = append(out, release(b.Intent))
		}
	}
	return out
}
