package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/storage"
)

// Run board layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the stats sidebar
	sidebarWidth       = 24 // Width of the stats sidebar
)

// RunsView selects which runs the board lists.
type RunsView int

const (
	ViewTop RunsView = iota
	ViewRecent
)

// String returns the tab title of the view.
func (v RunsView) String() string {
	if v == ViewRecent {
		return "Recent runs"
	}
	return "Longest runs"
}

// RunsKeyMap defines the key bindings for the run board.
type RunsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "longest/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history board.
type RunsModel struct {
	store       *storage.Store
	view        RunsView
	limit       int
	runs        []storage.RunRecord
	stats       *storage.RunStats
	err         error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRunsModel creates a new run board model.
func NewRunsModel(store *storage.Store, limit, width, height int) RunsModel {
	m := RunsModel{
		store:       store,
		limit:       limit,
		keys:        DefaultRunsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized for the current window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 10},
		{Title: "Gens", Width: 7},
		{Title: "Start", Width: 6},
		{Title: "Peak", Width: 6},
		{Title: "End", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4 // Sidebar + border + gap
	}
	if spare := tableWidth - used; spare > 0 {
		columns[1].Width += min(spare, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadRuns loads the runs of the current view and the totals.
func (m *RunsModel) loadRuns() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		if m.view == ViewRecent {
			m.runs, m.err = m.store.RecentRuns(m.limit)
		} else {
			m.runs, m.err = m.store.TopRuns(m.limit)
		}
		if m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = RunRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RunRow formats a run as a table row.
func RunRow(rank int, r storage.RunRecord) table.Row {
	date := ""
	if !r.CreatedAt.IsZero() {
		date = r.CreatedAt.Format("Jan 02 15:04")
	}
	return table.Row{
		fmt.Sprintf("%d", rank),
		r.Player,
		fmt.Sprintf("%d", r.Generations),
		fmt.Sprintf("%d", r.InitialPopulation),
		fmt.Sprintf("%d", r.PeakPopulation),
		fmt.Sprintf("%d", r.FinalPopulation),
		r.Duration.Round(100 * time.Millisecond).String(),
		date,
	}
}

// Init initializes the run board.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % 2
			m.loadRuns()
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

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("GAME OF LIFE - "+strings.ToUpper(m.view.String()), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the totals next to the table.
func (m RunsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString("Totals\n")
	s.WriteString(strings.Repeat("-", sidebarWidth-4))
	s.WriteString("\n")
	if m.stats == nil {
		s.WriteString("n/a\n")
		return sidebarStyle.Render(s.String())
	}

	fmt.Fprintf(&s, "Runs:    %d\n", m.stats.Runs)
	fmt.Fprintf(&s, "Longest: %d\n", m.stats.LongestRun)
	fmt.Fprintf(&s, "Average: %.1f\n", m.stats.AvgGenerations)
	fmt.Fprintf(&s, "Peak:    %d\n", m.stats.BiggestPeak)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&s, "Last:    %s\n", m.stats.LastPlayed.Format("Jan 02"))
	}
	return sidebarStyle.Render(s.String())
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nStart a pattern with Enter to record one!")
	}
	return m.table.View()
}

// centerText pads text so that it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunRunsBoard runs the run history screen.
func RunRunsBoard(store *storage.Store, limit, width, height int) error {
	model := NewRunsModel(store, limit, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
