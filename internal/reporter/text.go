package reporter

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/checks"
)

var (
	stylePass    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	styleFail    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	styleSkip    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	styleIssue   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8800"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
)

// TextReporter writes human-readable reports.
type TextReporter struct {
	writer  io.Writer
	verbose bool
}

// NewTextReporter creates a text reporter. With verbose set, every finding
// is printed grouped by module; otherwise only counts appear.
func NewTextReporter(writer io.Writer, verbose bool) *TextReporter {
	return &TextReporter{writer: writer, verbose: verbose}
}

// Generate writes the aggregate report.
func (r *TextReporter) Generate(report *aggregate.Report) error {
	r.printf("╔════════════════════════════════════════════╗\n")
	r.printf("║        shipcheck readiness report          ║\n")
	r.printf("╚════════════════════════════════════════════╝\n\n")
	r.printf("Project:   %s\n", report.ProjectPath)
	r.printf("Timestamp: %s\n\n", report.Timestamp.Format(time.RFC3339))

	for _, result := range report.Results {
		r.printModuleLine(result)
		if r.verbose {
			r.printFindings(result)
		}
	}

	r.printf("\nIssues: %d  Warnings: %d\n", report.TotalIssues, report.TotalWarnings)

	if report.OverallPassed {
		r.printf("Verdict: %s\n", stylePass.Render(report.Verdict))
	} else {
		r.printf("Verdict: %s\n", styleFail.Render(report.Verdict))
	}

	return nil
}

// Section writes a single module's result, used by the per-module commands.
func (r *TextReporter) Section(result *checks.Result) error {
	r.printf("%s\n", result.Module)
	r.printf("--------------------------------------------------\n")

	r.printFindings(result)

	if result.Skipped {
		r.printf("\n%s (nothing to check)\n", styleSkip.Render("SKIP"))
		return nil
	}

	r.printf("\n%d issue(s), %d warning(s): %s\n",
		result.IssueCount(), result.WarningCount(), r.statusLabel(result))
	return nil
}

func (r *TextReporter) printModuleLine(result *checks.Result) {
	r.printf("  %s  %-14s", r.statusLabel(result), result.Module)

	switch {
	case result.Skipped:
		r.printf("nothing to check\n")
	case result.IssueCount() == 0 && result.WarningCount() == 0:
		r.printf("clean\n")
	default:
		r.printf("%d issue(s), %d warning(s)\n", result.IssueCount(), result.WarningCount())
	}
}

func (r *TextReporter) printFindings(result *checks.Result) {
	for _, f := range result.Issues() {
		r.printf("    %s %s\n", styleIssue.Render("✗"), f.Message())
	}
	for _, f := range result.Warnings() {
		r.printf("    %s %s\n", styleWarning.Render("△"), f.Message())
	}
}

func (r *TextReporter) statusLabel(result *checks.Result) string {
	switch result.Status() {
	case "PASS":
		return stylePass.Render("PASS")
	case "SKIP":
		return styleSkip.Render("SKIP")
	default:
		return styleFail.Render("FAIL")
	}
}

func (r *TextReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}
