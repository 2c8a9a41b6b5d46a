package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

// tileStyles maps feedback symbols to tile colors.
var tileStyles = map[solver.Symbol]lipgloss.Style{
	solver.Absent:  tileBase.Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")),
	solver.Present: tileBase.Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")),
	solver.Correct: tileBase.Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")),
}

var (
	tileBase    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	pendingTile = tileBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// renderTiles draws word as a row of tiles colored by p. Positions past the
// end of p are drawn as pending.
func renderTiles(word string, p solver.Pattern) string {
	var b strings.Builder
	for i, r := range []rune(word) {
		style := pendingTile
		if i < len(p) {
			if s, ok := tileStyles[p[i]]; ok {
				style = s
			}
		}
		b.WriteString(style.Render(string(unicode.ToUpper(r))))
	}
	return b.String()
}

// partialPattern parses as much of raw as is valid, for the live preview
// while the result is being typed.
func partialPattern(raw string) solver.Pattern {
	p := make(solver.Pattern, 0, len(raw))
	for _, r := range raw {
		if r < '0' || r > '2' {
			break
		}
		p = append(p, solver.Symbol(r-'0'))
	}
	return p
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
