package tui

import (
	"fmt"
	"strings"

	"github.com/shipcheck/shipcheck/internal/aggregate"
)

// headerHeight is the number of terminal lines the header occupies.
const headerHeight = 5

// renderHeader produces the header string from the readiness report.
func renderHeader(report *aggregate.Report, width int) string {
	var b strings.Builder

	// Line 1: title and verdict
	verdict := verdictStyle(report.Verdict).Render(report.Verdict)
	b.WriteString(fmt.Sprintf("shipcheck  %s  %s", report.ProjectPath, verdict))
	b.WriteString("\n")

	// Line 2: module pass count and totals
	passed := 0
	for _, result := range report.Results {
		if result.Passed {
			passed++
		}
	}
	b.WriteString(fmt.Sprintf("Modules: %d/%d passed  Issues: %d  Warnings: %d",
		passed, len(report.Results), report.TotalIssues, report.TotalWarnings))
	b.WriteString("\n")

	// Line 3: per-module status strip
	parts := make([]string, 0, len(report.Results))
	for _, result := range report.Results {
		label := result.Module + ":" + result.Status()
		switch {
		case result.Skipped:
			parts = append(parts, styleFooter.Render(label))
		case result.Passed:
			parts = append(parts, verdictStyle("READY").Render(label))
		default:
			parts = append(parts, verdictStyle("NOT_READY").Render(label))
		}
	}
	b.WriteString(strings.Join(parts, "  "))

	return styleHeader.Width(width).Render(b.String())
}
