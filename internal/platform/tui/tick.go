// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/session"
)

// TickMsg is sent to trigger a game simulation tick. Generation ties it
// to the round that scheduled it; ticks of a stopped round are dropped.
type TickMsg struct {
	Generation uint64
	At         time.Time
}

// tickCmd schedules the next tick for the given round.
func tickCmd(t session.Ticket) tea.Cmd {
	return tea.Tick(t.Interval, func(at time.Time) tea.Msg {
		return TickMsg{Generation: t.Generation, At: at}
	})
}

// releaseMsg ends a held key once no repeat arrived within the window.
type releaseMsg struct {
	key string
	seq int
}

// Terminals report no key-up, so repeats keep a held key latched.
// The first press waits out the terminal's auto-repeat delay, which is
// usually 250-500 ms; after that repeats arrive every few tens of ms.
const (
	firstReleaseAfter = 550 * time.Millisecond
	releaseAfter      = 180 * time.Millisecond
)

func releaseCmd(key string, seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return releaseMsg{key: key, seq: seq}
	})
}
