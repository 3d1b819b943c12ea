package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/intent"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

// chromeRows is the number of rows taken by the HUD and help lines.
const chromeRows = 2

// Optional HUD readouts a game may provide.
type (
	livesReporter    interface{ Lives() int }
	levelReporter    interface{ Level() int }
	opponentReporter interface{ OpponentScore() int }
)

var (
	hudStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GameModel runs the controller's current game: it turns key presses
// into intents, schedules ticks for the live generation and draws the
// projected frame.
type GameModel struct {
	ctrl   *session.Controller
	screen *core.Screen
	table  intent.Table
	keys   ShellKeyMap
	help   help.Model
	held   map[string]int
	seq    int
	err    error

	quitting   bool
	backToMenu bool
}

// NewGameModel starts gameID on ctrl and returns a model sized for the
// terminal.
func NewGameModel(ctrl *session.Controller, gameID string, width, height int) (GameModel, error) {
	if _, err := ctrl.Start(gameID); err != nil {
		return GameModel{}, err
	}
	table, _ := intent.For(gameID)

	h := help.New()
	h.Width = width

	return GameModel{
		ctrl:   ctrl,
		screen: core.NewScreen(width, max(0, height-chromeRows)),
		table:  table,
		keys:   DefaultShellKeyMap(),
		help:   h,
		held:   make(map[string]int),
	}, nil
}

// Init schedules the first tick.
func (m GameModel) Init() tea.Cmd {
	if t, ok := m.ctrl.Ticket(); ok {
		return tickCmd(t)
	}
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(0, msg.Height-chromeRows))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case releaseMsg:
		if m.held[msg.key] == msg.seq {
			delete(m.held, msg.key)
			if in, ok := m.table.Map(intent.RawEvent{Type: intent.KeyUp, Key: msg.key}); ok {
				m.ctrl.Input(in)
			}
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.ctrl.Stop()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Restart) && !m.ctrl.Active():
		t, err := m.ctrl.Restart()
		if err != nil {
			m.err = err
			return m, nil
		}
		clear(m.held)
		return m, tickCmd(t)
	}

	ev := KeyEvent(msg)
	in, ok := m.table.Map(ev)
	if !ok || !m.ctrl.Input(in) {
		return m, nil
	}

	if m.table.Held(in) {
		k := ev.String()
		after := m.releaseDelay(k)
		m.seq++
		m.held[k] = m.seq
		return m, releaseCmd(k, m.seq, after)
	}
	return m, nil
}

// releaseDelay is the window before a held key is released: long for a
// fresh press, short once repeats are arriving.
func (m GameModel) releaseDelay(k string) time.Duration {
	if _, repeating := m.held[k]; repeating {
		return releaseAfter
	}
	return firstReleaseAfter
}

// handleTick steps the game and schedules the next tick while the
// round is live. Ticks from an earlier round are dropped here.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.ctrl.Tick(msg.Generation); !ok {
		return m, nil
	}
	if t, ok := m.ctrl.Ticket(); ok {
		return m, tickCmd(t)
	}
	clear(m.held)
	return m, nil
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.ctrl.Frame(), 0)

	st := m.ctrl.State()
	if st.Over() {
		m.drawEndScreen(st)
	}

	var b strings.Builder
	b.WriteString(hudStyle.Render(m.hud(st)))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(helpStyle.Render(m.err.Error()))
	} else {
		b.WriteString(helpStyle.Render(m.help.ShortHelpView(append(m.table.ShortHelp(), m.keys.ShortHelp()...))))
	}
	return b.String()
}

// hud builds the status line above the playfield.
func (m GameModel) hud(st core.GameState) string {
	g := m.ctrl.Game()
	if g == nil {
		return ""
	}

	parts := []string{strings.ToUpper(g.Title()), fmt.Sprintf("Score: %d", st.Score)}
	if r, ok := g.(opponentReporter); ok {
		parts = append(parts, fmt.Sprintf("CPU: %d", r.OpponentScore()))
	}
	if r, ok := g.(livesReporter); ok {
		parts = append(parts, fmt.Sprintf("Lives: %d", r.Lives()))
	}
	if r, ok := g.(levelReporter); ok {
		parts = append(parts, fmt.Sprintf("Level: %d", r.Level()))
	}
	return strings.Join(parts, "   ")
}

// drawEndScreen overlays the result box on the frozen playfield.
func (m GameModel) drawEndScreen(st core.GameState) {
	title := "GAME OVER"
	if st.Cause.Victory() {
		title = "VICTORY"
	}
	lines := []string{
		title,
		causeText(st.Cause),
		fmt.Sprintf("Score: %d", st.Score),
		"r: restart   esc: menu",
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect((m.screen.Width()-w-4)/2, m.screen.Height()/2-3, w+4, len(lines)+2)
	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	for i, l := range lines {
		m.screen.DrawTextCentered(box.Y+1+i, l)
	}
}

func causeText(c core.Cause) string {
	switch c {
	case core.CauseWall:
		return "Hit the wall"
	case core.CauseSelf:
		return "Ran into yourself"
	case core.CauseBoardFull:
		return "No room for the next piece"
	case core.CauseOutOfLives:
		return "Out of lives"
	case core.CauseInvaded:
		return "The invaders landed"
	case core.CauseCleared:
		return "Wave cleared"
	case core.CausePlayerWon:
		return "You beat the CPU"
	case core.CauseOpponentWon:
		return "The CPU wins"
	default:
		return ""
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
