package aggregate

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shipcheck/shipcheck/internal/checks"
)

// Verdict values for the aggregate report.
const (
	VerdictReady    = "READY"
	VerdictNotReady = "NOT_READY"
)

// Module pairs a name with its check function.
type Module struct {
	Name string
	Run  func(checks.Target) *checks.Result
}

// Modules is the fixed execution order. No module's result depends on
// another's; the aggregator composes but never cross-wires data.
var Modules = []Module{
	{"env", checks.Env},
	{"auth", checks.Auth},
	{"api", checks.API},
	{"project", checks.Project},
	{"security", checks.Security},
	{"dependencies", checks.Dependencies},
	{"database", checks.Database},
}

// ModuleNames returns the known module names in execution order.
func ModuleNames() []string {
	names := make([]string, len(Modules))
	for i, m := range Modules {
		names[i] = m.Name
	}
	return names
}

// IsModule reports whether name is a known module.
func IsModule(name string) bool {
	for _, m := range Modules {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Report is the merged verdict across all run modules.
type Report struct {
	Timestamp     time.Time        `json:"timestamp"`
	ProjectPath   string           `json:"project_path"`
	Verdict       string           `json:"verdict"`
	OverallPassed bool             `json:"overall_passed"`
	Results       []*checks.Result `json:"results"`
	TotalIssues   int              `json:"total_issues"`
	TotalWarnings int              `json:"total_warnings"`
}

// Run executes every module not named in skip, in fixed order, and merges
// the results. Skipping a module removes it from both the pass computation
// and the totals; a module that self-reports skipped counts as passed.
func Run(target checks.Target, skip map[string]bool) *Report {
	report := &Report{
		Timestamp:     time.Now(),
		ProjectPath:   target.Root,
		OverallPassed: true,
	}

	for _, m := range Modules {
		if skip[m.Name] {
			continue
		}
		result := m.Run(target)
		report.Results = append(report.Results, result)
		report.TotalIssues += result.IssueCount()
		report.TotalWarnings += result.WarningCount()
		if !result.Passed {
			report.OverallPassed = false
		}
	}

	report.Verdict = VerdictNotReady
	if report.OverallPassed {
		report.Verdict = VerdictReady
	}

	return report
}

// ModuleResult returns the named module's result, or nil if it was not run.
func (r *Report) ModuleResult(name string) *checks.Result {
	for _, result := range r.Results {
		if result.Module == name {
			return result
		}
	}
	return nil
}

// moduleSummary is the per-module entry in the exported report.
type moduleSummary struct {
	Passed   bool `json:"passed"`
	Issues   int  `json:"issues"`
	Warnings int  `json:"warnings"`
}

// exportReport is the persisted JSON shape.
type exportReport struct {
	Timestamp   string                   `json:"timestamp"`
	ProjectPath string                   `json:"project_path"`
	Verdict     string                   `json:"verdict"`
	Summary     map[string]moduleSummary `json:"summary"`
	Details     []*checks.Result         `json:"details"`
}

// Export serializes the report for persistence.
func (r *Report) Export() ([]byte, error) {
	out := exportReport{
		Timestamp:   r.Timestamp.Format(time.RFC3339),
		ProjectPath: r.ProjectPath,
		Verdict:     r.Verdict,
		Summary:     make(map[string]moduleSummary, len(r.Results)),
		Details:     r.Results,
	}
	for _, result := range r.Results {
		out.Summary[result.Module] = moduleSummary{
			Passed:   result.Passed,
			Issues:   result.IssueCount(),
			Warnings: result.WarningCount(),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// WriteJSON writes the exported report to path.
func (r *Report) WriteJSON(path string) error {
	data, err := r.Export()
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
