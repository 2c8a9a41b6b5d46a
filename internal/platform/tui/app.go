// Package tui provides the Bubble Tea front end for the solver: a variant
// menu, the solve screen and the statistics screen, plus an SSH server that
// serves the same app over Wish.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bibliophage305/wordle-solver/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenSolve
	screenStats
)

// AppModel manages the full flow: menu -> solve or stats -> menu.
type AppModel struct {
	opts     Options
	width    int
	height   int
	screen   screen
	menu     MenuModel
	solve    SolveModel
	stats    StatsModel
	err      error
	quitting bool
}

// NewAppModel creates the app model. A non-empty startVariant skips the menu
// and starts solving that variant straight away.
func NewAppModel(opts Options, startVariant string, recompute bool, width, height int) AppModel {
	m := AppModel{
		opts:   opts,
		width:  width,
		height: height,
		menu:   NewMenuModel(opts.Mode, width, height),
	}
	if startVariant != "" {
		m.startSolve(Selection{VariantID: startVariant, Mode: opts.Mode, Recompute: recompute})
	}
	return m
}

func (m *AppModel) startSolve(sel Selection) {
	v, err := registry.Create(sel.VariantID)
	if err != nil {
		m.err = err
		m.screen = screenMenu
		return
	}
	m.err = nil
	m.solve = NewSolveModel(v, sel, m.opts, m.width, m.height)
	m.screen = screenSolve
}

// Init initializes the current screen.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenSolve {
		return m.solve.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the current screen and handles transitions.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenSolve:
		return m.updateSolve(msg)
	case screenStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsStats():
		m.menu = m.freshMenu()
		m.stats = NewStatsModel(m.opts.Store, m.width, m.height)
		m.screen = screenStats
		return m, m.stats.Init()

	case m.menu.Selected() != nil:
		sel := *m.menu.Selected()
		m.menu = m.freshMenu()
		m.startSolve(sel)
		if m.screen == screenSolve {
			return m, m.solve.Init()
		}
	}
	return m, cmd
}

func (m AppModel) updateSolve(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.solve.Update(msg)
	if solve, ok := next.(SolveModel); ok {
		m.solve = solve
	}

	switch {
	case m.solve.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.solve.BackToMenu():
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.stats.Update(msg)
	if stats, ok := next.(StatsModel); ok {
		m.stats = stats
	}

	switch {
	case m.stats.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.stats.IsGoingBack():
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// freshMenu resets the menu's one-shot flags while keeping the cursor and
// toggles where the player left them.
func (m AppModel) freshMenu() MenuModel {
	menu := m.menu
	menu.selected = nil
	menu.openStats = false
	menu.width, menu.height = m.width, m.height
	menu.help.Width = m.width
	return menu
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenSolve:
		return m.solve.View()
	case screenStats:
		return m.stats.View()
	}
	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(errorStyle.Render(m.err.Error()), m.width) + "\n"
	}
	return view
}

// Run starts the app in the local terminal.
func Run(opts Options, startVariant string, recompute bool) error {
	model := NewAppModel(opts, startVariant, recompute, 80, 24)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
