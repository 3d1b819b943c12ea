package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/intent"
)

// ShellKeyMap holds the keys the shell handles itself, outside any
// game's binding table.
type ShellKeyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Restart key.Binding
}

// DefaultShellKeyMap returns the shell bindings.
func DefaultShellKeyMap() ShellKeyMap {
	return ShellKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ShellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ShellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// KeyEvent converts a terminal key press into a raw device event.
// Terminals only report presses.
func KeyEvent(msg tea.KeyMsg) intent.RawEvent {
	return intent.RawEvent{Type: intent.KeyDown, Key: msg.String()}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionReplays
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionReplays
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
