package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shipcheck/shipcheck/internal/checks"
)

// Severity and status colors
var (
	colorIssue   = lipgloss.Color("#FF5F5F")
	colorWarning = lipgloss.Color("#FFD700")
	colorPass    = lipgloss.Color("#00D787")
	colorMuted   = lipgloss.Color("#888888")
	colorAccent  = lipgloss.Color("#7B68EE")
	colorBorder  = lipgloss.Color("#444444")
)

// Panel styles
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	styleDetailPanel = lipgloss.NewStyle().
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(colorBorder)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(colorAccent).Bold(true)
)

// severityStyle returns the lipgloss style for a finding severity.
func severityStyle(severity checks.Severity) lipgloss.Style {
	switch severity {
	case checks.SeverityIssue:
		return lipgloss.NewStyle().Foreground(colorIssue).Bold(true)
	case checks.SeverityWarning:
		return lipgloss.NewStyle().Foreground(colorWarning)
	default:
		return lipgloss.NewStyle()
	}
}

// verdictStyle returns the lipgloss style for the overall verdict line.
func verdictStyle(verdict string) lipgloss.Style {
	if verdict == "READY" {
		return lipgloss.NewStyle().Foreground(colorPass).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(colorIssue).Bold(true)
}
