package tui

import (
	"fmt"
	"strings"

	"github.com/shipcheck/shipcheck/internal/extract"
)

// detailHeight is the fixed number of lines for the detail panel.
const detailHeight = 5

// renderDetail produces the detail view for a selected finding.
func renderDetail(r *row, width int) string {
	if r == nil {
		return styleDetailPanel.Width(width).Render("No finding selected")
	}

	var b strings.Builder
	f := r.Finding

	sevStyled := severityStyle(f.Severity).Render(strings.ToUpper(string(f.Severity)))
	b.WriteString(fmt.Sprintf("%s  %s / %s\n", sevStyled, r.Module, f.Kind))
	b.WriteString(f.Message())
	b.WriteString("\n")

	parts := make([]string, 0, 3)
	if loc := r.location(); loc != "" {
		parts = append(parts, "At: "+loc)
	}
	if f.Seconds > 0 {
		parts = append(parts, "Expiry: "+extract.FormatDuration(f.Seconds))
	}
	if f.Detail != "" {
		parts = append(parts, f.Detail)
	}
	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, "  "))
	}

	return styleDetailPanel.Width(width).Render(b.String())
}
