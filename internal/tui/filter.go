package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/checks"
)

// row is one finding flattened out of the per-module results.
type row struct {
	Module  string
	Finding checks.Finding
}

// location renders the most specific position a finding carries.
func (r row) location() string {
	f := r.Finding
	switch {
	case f.File != "" && f.Line > 0:
		return fmt.Sprintf("%s:%d", f.File, f.Line)
	case f.File != "":
		return f.File
	case f.Method != "" && f.Path != "":
		return f.Method + " " + f.Path
	case f.Var != "":
		return f.Var
	default:
		return ""
	}
}

// flatten collects every finding from the report into rows.
func flatten(report *aggregate.Report) []row {
	var rows []row
	for _, result := range report.Results {
		for _, f := range result.Findings {
			rows = append(rows, row{Module: result.Module, Finding: f})
		}
	}
	return rows
}

// filterState holds current active filters.
type filterState struct {
	Module     string
	Severity   checks.Severity
	SearchText string
}

// sortField enumerates columns that can be sorted.
type sortField int

const (
	sortBySeverity sortField = iota
	sortByModule
	sortByKind
	sortByLocation
)

// sortFieldCount is the total number of sortable columns.
const sortFieldCount = 4

var severityPriority = map[checks.Severity]int{
	checks.SeverityIssue:   0,
	checks.SeverityWarning: 1,
}

// applyFilters returns rows matching all active filters.
func applyFilters(rows []row, f filterState) []row {
	result := make([]row, 0, len(rows))
	searchLower := strings.ToLower(f.SearchText)

	for _, r := range rows {
		if f.Module != "" && r.Module != f.Module {
			continue
		}
		if f.Severity != "" && r.Finding.Severity != f.Severity {
			continue
		}
		if searchLower != "" && !matchesSearch(r, searchLower) {
			continue
		}
		result = append(result, r)
	}
	return result
}

func matchesSearch(r row, searchLower string) bool {
	return strings.Contains(strings.ToLower(r.Module), searchLower) ||
		strings.Contains(strings.ToLower(string(r.Finding.Kind)), searchLower) ||
		strings.Contains(strings.ToLower(string(r.Finding.Severity)), searchLower) ||
		strings.Contains(strings.ToLower(r.location()), searchLower) ||
		strings.Contains(strings.ToLower(r.Finding.Message()), searchLower)
}

// sortRows sorts rows in place by the given field.
func sortRows(rows []row, field sortField) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch field {
		case sortBySeverity:
			return severityPriority[rows[i].Finding.Severity] < severityPriority[rows[j].Finding.Severity]
		case sortByModule:
			return rows[i].Module < rows[j].Module
		case sortByKind:
			return rows[i].Finding.Kind < rows[j].Finding.Kind
		case sortByLocation:
			return rows[i].location() < rows[j].location()
		default:
			return false
		}
	})
}

// uniqueModules returns deduplicated module names from rows in check order.
func uniqueModules(rows []row) []string {
	seen := make(map[string]bool)
	for _, r := range rows {
		seen[r.Module] = true
	}
	var modules []string
	for _, name := range aggregate.ModuleNames() {
		if seen[name] {
			modules = append(modules, name)
		}
	}
	return modules
}

// sortFieldName returns a human-readable name for the sort field.
func sortFieldName(f sortField) string {
	switch f {
	case sortBySeverity:
		return "severity"
	case sortByModule:
		return "module"
	case sortByKind:
		return "kind"
	case sortByLocation:
		return "location"
	default:
		return "unknown"
	}
}
