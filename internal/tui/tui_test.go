package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/checks"
)

func sampleReport() *aggregate.Report {
	return &aggregate.Report{
		ProjectPath: "/tmp/app",
		Verdict:     aggregate.VerdictNotReady,
		Results: []*checks.Result{
			{
				Module: "env",
				Findings: []checks.Finding{
					{Kind: checks.KindWeakSecret, Severity: checks.SeverityIssue, Var: "JWT_SECRET"},
					{Kind: checks.KindUndocumentedVar, Severity: checks.SeverityWarning, Var: "DEBUG"},
				},
			},
			{
				Module: "auth",
				Findings: []checks.Finding{
					{
						Kind:     checks.KindUnprotectedRoute,
						Severity: checks.SeverityIssue,
						Method:   "GET",
						Path:     "/admin",
						File:     "routes.js",
						Line:     12,
					},
				},
			},
			{Module: "api", Passed: true},
		},
		TotalIssues:   2,
		TotalWarnings: 1,
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestFlatten(t *testing.T) {
	rows := flatten(sampleReport())
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Module != "env" {
		t.Errorf("expected env module first, got %s", rows[0].Module)
	}
	if rows[2].Finding.Kind != checks.KindUnprotectedRoute {
		t.Errorf("unexpected kind: %s", rows[2].Finding.Kind)
	}
}

func TestRowLocation(t *testing.T) {
	tests := []struct {
		name string
		row  row
		want string
	}{
		{
			name: "file and line",
			row:  row{Finding: checks.Finding{File: "routes.js", Line: 12}},
			want: "routes.js:12",
		},
		{
			name: "method and path",
			row:  row{Finding: checks.Finding{Method: "GET", Path: "/admin"}},
			want: "GET /admin",
		},
		{
			name: "variable only",
			row:  row{Finding: checks.Finding{Var: "JWT_SECRET"}},
			want: "JWT_SECRET",
		},
		{
			name: "empty",
			row:  row{Finding: checks.Finding{}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.location(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyFiltersByModule(t *testing.T) {
	rows := flatten(sampleReport())

	filtered := applyFilters(rows, filterState{Module: "env"})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 env rows, got %d", len(filtered))
	}
	for _, r := range filtered {
		if r.Module != "env" {
			t.Errorf("unexpected module %s", r.Module)
		}
	}
}

func TestApplyFiltersBySeverity(t *testing.T) {
	rows := flatten(sampleReport())

	filtered := applyFilters(rows, filterState{Severity: checks.SeverityWarning})
	if len(filtered) != 1 {
		t.Fatalf("expected 1 warning row, got %d", len(filtered))
	}
	if filtered[0].Finding.Var != "DEBUG" {
		t.Errorf("unexpected row: %+v", filtered[0])
	}
}

func TestApplyFiltersBySearch(t *testing.T) {
	rows := flatten(sampleReport())

	filtered := applyFilters(rows, filterState{SearchText: "admin"})
	if len(filtered) != 1 {
		t.Fatalf("expected 1 row matching admin, got %d", len(filtered))
	}
	if filtered[0].Module != "auth" {
		t.Errorf("unexpected module %s", filtered[0].Module)
	}

	if got := applyFilters(rows, filterState{SearchText: "nomatch"}); len(got) != 0 {
		t.Errorf("expected no rows, got %d", len(got))
	}
}

func TestSortRowsSeverityFirst(t *testing.T) {
	rows := []row{
		{Module: "env", Finding: checks.Finding{Severity: checks.SeverityWarning}},
		{Module: "auth", Finding: checks.Finding{Severity: checks.SeverityIssue}},
	}

	sortRows(rows, sortBySeverity)
	if rows[0].Finding.Severity != checks.SeverityIssue {
		t.Error("issues should sort before warnings")
	}
}

func TestSortRowsByModule(t *testing.T) {
	rows := []row{
		{Module: "security"},
		{Module: "api"},
		{Module: "env"},
	}

	sortRows(rows, sortByModule)
	if rows[0].Module != "api" || rows[2].Module != "security" {
		t.Errorf("unexpected order: %s, %s, %s", rows[0].Module, rows[1].Module, rows[2].Module)
	}
}

func TestUniqueModulesKeepsCheckOrder(t *testing.T) {
	rows := []row{
		{Module: "auth"},
		{Module: "env"},
		{Module: "auth"},
	}

	modules := uniqueModules(rows)
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0] != "env" || modules[1] != "auth" {
		t.Errorf("expected check order env, auth; got %v", modules)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("a-very-long-location-string", 10); got != "a-very-..." {
		t.Errorf("got %q", got)
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := New(sampleReport())

	if len(m.allRows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(m.allRows))
	}
	if m.mode != modeNormal {
		t.Errorf("expected normal mode")
	}
	// Issues sort ahead of warnings on init.
	if m.filteredRows[0].Finding.Severity != checks.SeverityIssue {
		t.Error("expected issue first after initial sort")
	}
	if len(m.moduleChoices) != 2 {
		t.Errorf("expected 2 module choices, got %d", len(m.moduleChoices))
	}
}

func TestSearchFlow(t *testing.T) {
	m := New(sampleReport())

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	if m.mode != modeSearch {
		t.Fatal("expected search mode after /")
	}

	for _, r := range "admin" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)

	if m.mode != modeNormal {
		t.Error("expected normal mode after enter")
	}
	if len(m.filteredRows) != 1 {
		t.Errorf("expected 1 filtered row, got %d", len(m.filteredRows))
	}
}

func TestModuleFilterFlow(t *testing.T) {
	m := New(sampleReport())

	updated, _ := m.Update(keyMsg("m"))
	m = updated.(Model)
	if m.mode != modeFilterModule {
		t.Fatal("expected module filter mode after m")
	}

	// Cursor 0 is "All"; move to the first module.
	updated, _ = m.Update(keyMsg("down"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)

	if m.filters.Module != "env" {
		t.Errorf("expected env filter, got %q", m.filters.Module)
	}
	if len(m.filteredRows) != 2 {
		t.Errorf("expected 2 filtered rows, got %d", len(m.filteredRows))
	}

	// esc clears the filter.
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(Model)
	if m.filters.Module != "" {
		t.Error("expected cleared filter after esc")
	}
}

func TestSortCycle(t *testing.T) {
	m := New(sampleReport())

	updated, _ := m.Update(keyMsg("s"))
	m = updated.(Model)
	if m.sortBy != sortByModule {
		t.Errorf("expected sortByModule, got %v", m.sortBy)
	}

	for i := 0; i < sortFieldCount-1; i++ {
		updated, _ = m.Update(keyMsg("s"))
		m = updated.(Model)
	}
	if m.sortBy != sortBySeverity {
		t.Errorf("expected sort to wrap to severity, got %v", m.sortBy)
	}
}

func TestQuit(t *testing.T) {
	m := New(sampleReport())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestCopySelectedFinding(t *testing.T) {
	m := New(sampleReport())
	updated, _ := m.Update(keyMsg("c"))
	m = updated.(Model)

	if m.clipboard == "" {
		t.Fatal("expected clipboard content")
	}
	if !strings.Contains(m.clipboard, "issue") {
		t.Errorf("clipboard missing severity: %q", m.clipboard)
	}
}

func TestCopyWithNoFindings(t *testing.T) {
	m := New(&aggregate.Report{Verdict: aggregate.VerdictReady})
	updated, _ := m.Update(keyMsg("c"))
	m = updated.(Model)

	if m.clipboard != "" {
		t.Errorf("expected empty clipboard, got %q", m.clipboard)
	}
	if m.statusMsg != "Nothing to copy" {
		t.Errorf("unexpected status: %q", m.statusMsg)
	}
}

func TestViewContainsVerdictAndFooter(t *testing.T) {
	m := New(sampleReport())
	view := m.View()

	if !strings.Contains(view, "NOT_READY") {
		t.Error("view missing verdict")
	}
	if !strings.Contains(view, "3/3 findings") {
		t.Error("view missing footer count")
	}
}

func TestWindowResize(t *testing.T) {
	m := New(sampleReport())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("unexpected size %dx%d", m.width, m.height)
	}
}
