package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/registry"
)

// modeCycle is the order the mode key steps through.
var modeCycle = []config.Mode{config.ModeVariant, config.ModeHard, config.ModeNormal}

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	VariantID string
	Title     string
	Builtin   bool
}

// Selection is what the player picked from the menu.
type Selection struct {
	VariantID string
	Mode      config.Mode
	Recompute bool
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	mode      config.Mode
	recompute bool
	width     int
	height    int
	keys      MenuKeyMap
	help      help.Model
	quitting  bool
	selected  *Selection
	openStats bool
}

// NewMenuModel creates a new menu model listing every registered variant.
func NewMenuModel(mode config.Mode, width, height int) MenuModel {
	variants := registry.List()
	items := make([]MenuItem, 0, len(variants))
	for _, v := range variants {
		items = append(items, MenuItem{
			VariantID: v.ID,
			Title:     fmt.Sprintf("%s (%d)", v.Name, v.WordLength),
			Builtin:   v.Builtin,
		})
	}
	if mode == "" {
		mode = config.ModeVariant
	}
	return MenuModel{
		items:  items,
		mode:   mode,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Mode):
		for i, mode := range modeCycle {
			if mode == m.mode {
				m.mode = modeCycle[(i+1)%len(modeCycle)]
				break
			}
		}

	case key.Matches(msg, m.keys.Fresh):
		m.recompute = !m.recompute

	case key.Matches(msg, m.keys.Stats):
		m.openStats = true

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected = &Selection{
				VariantID: m.items[m.cursor].VariantID,
				Mode:      m.mode,
				Recompute: m.recompute,
			}
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  W O R D L E   S O L V E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a puzzle", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(dimStyle.Render("No variants registered."), m.width))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + item.Title
		if !item.Builtin {
			line += " *"
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	opening := "cached"
	if m.recompute {
		opening = "recompute"
	}
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Mode: %s  |  Opening: %s", m.mode, opening)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the player's choice, or nil if none yet.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user asked for the stats screen.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}
