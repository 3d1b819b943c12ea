package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/replay"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// Replay browser layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show game list sidebar
	sidebarWidth       = 20  // Width of game list sidebar
	maxReplays         = 100 // Max replays to load
)

// ReplayStore is the part of the journal store the browser reads.
type ReplayStore interface {
	RecentReplays(gameID string, limit int) ([]storage.ReplaySummary, error)
	Replay(id string) (replay.Log, error)
}

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Verify   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Verify, k.Back, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "re-simulate"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel lists stored journals per game and re-simulates the
// selected one on demand.
type ReplaysModel struct {
	games       []registry.GameInfo // "All" first, then every registered game
	gameCursor  int
	store       ReplayStore
	replays     []storage.ReplaySummary
	table       table.Model
	help        help.Model
	keys        ReplaysKeyMap
	status      string
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewReplaysModel creates a new replay browser. store may be nil.
func NewReplaysModel(store ReplayStore, width, height int) ReplaysModel {
	games := append([]registry.GameInfo{{ID: "", Title: "All games"}}, registry.List()...)

	h := help.New()
	h.ShowAll = false

	m := ReplaysModel{
		games:       games,
		store:       store,
		keys:        DefaultReplaysKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Game", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 14},
		{Title: "Ticks", Width: 7},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth < 70 {
		// Narrow terminals drop the game column.
		columns = append(columns[:1], columns[2:]...)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays loads journals for the selected game.
func (m *ReplaysModel) loadReplays() {
	m.replays = nil
	if m.store != nil {
		replays, err := m.store.RecentReplays(m.games[m.gameCursor].ID, maxReplays)
		if err != nil {
			m.status = err.Error()
		} else {
			m.replays = replays
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded journals.
func (m *ReplaysModel) updateTableRows() {
	wide := len(m.table.Columns()) == 6
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		result := string(r.Cause)
		if !r.Completed() {
			result = "abandoned"
		}
		row := table.Row{shortID(r.ID)}
		if wide {
			row = append(row, r.GameID)
		}
		row = append(row,
			fmt.Sprintf("%d", r.Score),
			result,
			fmt.Sprintf("%d", r.Ticks),
			r.EndedAt.Format("Jan 02 15:04"),
		)
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// verifySelected re-simulates the highlighted journal.
func (m *ReplaysModel) verifySelected() {
	if m.store == nil || len(m.replays) == 0 {
		return
	}
	id := m.replays[m.table.Cursor()].ID

	log, err := m.store.Replay(id)
	if err != nil {
		m.status = err.Error()
		return
	}
	res, err := replay.Verify(log)
	if err != nil {
		m.status = fmt.Sprintf("%s: %v", shortID(id), err)
		return
	}
	m.status = fmt.Sprintf("%s: verified, score %d after %d ticks", shortID(id), res.State.Score, log.Ticks)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			m.gameCursor = (m.gameCursor + 1) % len(m.games)
			m.status = ""
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.gameCursor--
			if m.gameCursor < 0 {
				m.gameCursor = len(m.games) - 1
			}
			m.status = ""
			m.loadReplays()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("REPLAYS - %s", m.games[m.gameCursor].Title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the game filter list.
func (m ReplaysModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.replays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nFinish a round to record one!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplaysModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplaysModel) IsQuitting() bool {
	return m.quitting
}
