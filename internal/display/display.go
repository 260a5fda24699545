// Package display renders conversion results for the terminal.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tartampluch/go-vivace/internal/calendar"
)

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#10B981") // Green
	Muted   = lipgloss.Color("#6B7280") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	System = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Date = lipgloss.NewStyle()

	Info = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)
)

// Results draws one line per result inside a rounded box, system names
// aligned in a column. empty is shown when there is nothing to draw.
func Results(title string, results []calendar.Result, empty string) string {
	if len(results) == 0 {
		return Box.Render(Title.Render(title) + "\n" + Info.Render(empty))
	}

	width := 0
	for _, r := range results {
		width = max(width, lipgloss.Width(r.System))
	}
	label := System.Width(width + 2)

	lines := make([]string, 0, len(results))
	for _, r := range results {
		line := label.Render(r.System) + Date.Render(r.Date)
		if r.AdditionalInfo != "" {
			line += "  " + Info.Render(r.AdditionalInfo)
		}
		lines = append(lines, line)
	}
	return Box.Render(lipgloss.JoinVertical(lipgloss.Left, Title.Render(title), strings.Join(lines, "\n")))
}

// List draws a titled bullet list.
func List(title string, items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "• "+it)
	}
	return lipgloss.JoinVertical(lipgloss.Left, Title.Render(title), strings.Join(lines, "\n"))
}
