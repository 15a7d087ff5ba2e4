package controls

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	borderCol = lipgloss.Color("#243141")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	keyStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Banner renders the binding table as a boxed help panel for the terminal.
// Consecutive bindings registered together with one description share a row.
//
// Parameters:
//   - title: the demo name shown above the table
//   - b: the bindings to list
//
// Returns:
//   - string: the rendered panel
func Banner(title string, b Bindings) string {
	type row struct {
		keys []string
		help string
	}
	var rows []row
	for _, bind := range b.Bindings() {
		if bind.Help == "" && len(rows) > 0 {
			last := &rows[len(rows)-1]
			last.keys = append(last.keys, bind.Label())
			continue
		}
		rows = append(rows, row{keys: []string{bind.Label()}, help: bind.Help})
	}

	width := 0
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = strings.Join(r.keys, " ")
		width = max(width, lipgloss.Width(labels[i]))
	}

	lines := []string{titleStyle.Render(title)}
	for i, r := range rows {
		key := keyStyle.Width(width).Render(labels[i])
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key, "  ", dimStyle.Render(r.help)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Width(width).Render("Esc"), "  ", dimStyle.Render("quit")))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
