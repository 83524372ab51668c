package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/shipcheck/shipcheck/internal/checks"
)

var tableColumns = []table.Column{
	{Title: "Severity", Width: 9},
	{Title: "Module", Width: 14},
	{Title: "Kind", Width: 26},
	{Title: "Location", Width: 34},
}

// buildRows converts flattened findings to table rows.
func buildRows(rows []row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			severityLabel(r.Finding.Severity),
			r.Module,
			truncate(string(r.Finding.Kind), tableColumns[2].Width),
			truncate(r.location(), tableColumns[3].Width),
		})
	}
	return out
}

func severityLabel(s checks.Severity) string {
	return strings.ToUpper(string(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	const ellipsis = "..."
	if maxLen <= len(ellipsis) {
		return s[:maxLen]
	}
	return s[:maxLen-len(ellipsis)] + ellipsis
}

// newTable creates a bubbles table with standard columns and styling.
func newTable(rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)

	return t
}
