package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Bibliophage305/wordle-solver/internal/registry"
	"github.com/Bibliophage305/wordle-solver/internal/storage"
)

// Stats layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show variant list sidebar
	sidebarWidth       = 24 // Width of variant list sidebar
	maxSolves          = 100
	barWidth           = 30 // Width of the longest distribution bar
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
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

// StatsModel shows the session log and aggregate statistics per variant.
type StatsModel struct {
	variants    []registry.Info
	cursor      int
	store       *storage.Store
	stats       *storage.VariantStats
	solves      []storage.Solve
	loadErr     error
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewStatsModel creates a new stats model. Variants with logged sessions
// come first.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	variants := registry.List()
	if store != nil {
		if played, err := store.PlayedVariants(); err == nil {
			slices.SortStableFunc(variants, func(a, b registry.Info) int {
				pa, pb := slices.Contains(played, a.ID), slices.Contains(played, b.ID)
				switch {
				case pa && !pb:
					return -1
				case pb && !pa:
					return 1
				}
				return 0
			})
		}
	}

	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		variants:    variants,
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.variants) > 0 {
		m.load(m.variants[0].ID)
	}
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Answer", Width: 10},
		{Title: "Guesses", Width: 8},
		{Title: "Mode", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := m.height - 16 // title, summary, distribution, help
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

func (m *StatsModel) load(variantID string) {
	m.stats, m.solves, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.stats, m.loadErr = m.store.GetVariantStats(variantID)
		if m.loadErr == nil {
			m.solves, m.loadErr = m.store.RecentSolves(variantID, maxSolves)
		}
	}
	m.updateTableRows()
}

func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.solves))
	for i, sv := range m.solves {
		answer := sv.Answer
		if sv.Outcome == storage.OutcomeFailed {
			answer = "(failed)"
		}
		mode := "normal"
		if sv.Hard {
			mode = "hard"
		}
		rows[i] = table.Row{
			answer,
			fmt.Sprintf("%d", sv.Rounds()),
			mode,
			sv.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Next):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.load(m.variants[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor - 1 + len(m.variants)) % len(m.variants)
				m.load(m.variants[m.cursor].ID)
			}
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

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "STATISTICS"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("STATISTICS - %s", m.variants[m.cursor].Name)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := boxStyle.Render(m.renderContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(content)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m StatsModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Variants\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, v := range m.variants {
		cursor := "  "
		line := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			line = line.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := v.Name
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sb.WriteString(line.Render(cursor + name))
		sb.WriteString("\n")
	}
	return style.Render(sb.String())
}

func (m StatsModel) renderContent() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	switch {
	case m.store == nil:
		return empty.Render("No database open.")
	case m.loadErr != nil:
		return errorStyle.Render(m.loadErr.Error())
	case m.stats == nil || m.stats.Games == 0:
		return empty.Render("No sessions recorded yet.\nSolve a puzzle to start the log!")
	}

	var b strings.Builder
	s := m.stats
	fmt.Fprintf(&b, "Played %d  |  Solved %d  |  Avg %.2f  |  Best %d\n\n", s.Games, s.Solved, s.AvgRounds, s.BestRounds)
	b.WriteString(renderDistribution(s.Distribution))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	return b.String()
}

// renderDistribution draws one bar per guess count, scaled to the largest.
func renderDistribution(dist map[int]int) string {
	counts := make([]int, 0, len(dist))
	most := 0
	for n, c := range dist {
		counts = append(counts, n)
		most = max(most, c)
	}
	slices.Sort(counts)

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	var b strings.Builder
	for _, n := range counts {
		c := dist[n]
		w := max(1, c*barWidth/most)
		fmt.Fprintf(&b, "%2d %s %d\n", n, bar.Render(strings.Repeat("#", w)), c)
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
