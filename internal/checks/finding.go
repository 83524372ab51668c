package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shipcheck/shipcheck/internal/extract"
)

// Severity distinguishes blocking findings from advisory ones.
type Severity string

const (
	SeverityIssue   Severity = "issue"
	SeverityWarning Severity = "warning"
)

// Kind tags a finding with a machine-matchable category. The fix generator
// and policy rules match on the tag, never on rendered text.
type Kind string

const (
	// env
	KindMissingEnvFile    Kind = "missing_env_file"
	KindMissingEnvVar     Kind = "missing_env_var"
	KindEmptySecret       Kind = "empty_secret"
	KindWeakSecret        Kind = "weak_secret"
	KindShortCredential   Kind = "short_credential"
	KindUndocumentedVar   Kind = "undocumented_env_var"
	KindInvalidEnvValue   Kind = "invalid_env_value"

	// auth
	KindUnprotectedRoute Kind = "unprotected_route"
	KindLongTokenExpiry  Kind = "long_token_expiry"
	KindNoRoutes         Kind = "no_routes"

	// api
	KindMissingHealthEndpoint Kind = "missing_health_endpoint"
	KindMissingCollectionGet  Kind = "missing_collection_get"
	KindMissingItemGet        Kind = "missing_item_get"

	// project
	KindMissingEnvExample   Kind = "missing_env_example"
	KindMissingReadme       Kind = "missing_readme"
	KindShortReadme         Kind = "short_readme"
	KindReadmeMissingUsage  Kind = "readme_missing_usage"
	KindMissingStandardDirs Kind = "missing_standard_dirs"
	KindNoErrorHandler      Kind = "no_error_handler"
	KindMissingPackageField Kind = "missing_package_field"

	// security
	KindWildcardCORS      Kind = "wildcard_cors"
	KindNoCORS            Kind = "no_cors"
	KindNoSecurityHeaders Kind = "no_security_headers"
	KindNoRateLimit       Kind = "no_rate_limit"
	KindEvalUsage         Kind = "eval_usage"
	KindDynamicRegex      Kind = "dynamic_regex"

	// dependencies
	KindMissingPackageJSON      Kind = "missing_package_json"
	KindInvalidPackageJSON      Kind = "invalid_package_json"
	KindNoLockFile              Kind = "no_lock_file"
	KindNoWebFramework          Kind = "no_web_framework"
	KindMissingSecurityPackages Kind = "missing_security_packages"
	KindTooManyDependencies     Kind = "too_many_dependencies"

	// database
	KindNoConnectionErrorHandling Kind = "no_connection_error_handling"
	KindNoConnectionPooling       Kind = "no_connection_pooling"
	KindNoMigrations              Kind = "no_migrations"
)

// Finding is a single check result with a tagged kind and structured payload.
// Text is rendered once, at the presentation boundary, by Message.
type Finding struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Var      string   `json:"var,omitempty"`
	Method   string   `json:"method,omitempty"`
	Path     string   `json:"path,omitempty"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Seconds  int64    `json:"seconds,omitempty"`
	Detail   string   `json:"detail,omitempty"`
}

// Message renders the finding as a human-readable line.
func (f Finding) Message() string {
	switch f.Kind {
	case KindMissingEnvFile:
		return ".env file not found"
	case KindMissingEnvVar:
		return fmt.Sprintf("%s is documented in .env.example but missing from .env", f.Var)
	case KindEmptySecret:
		return fmt.Sprintf("%s is empty", f.Var)
	case KindWeakSecret:
		return fmt.Sprintf("%s is shorter than 32 characters", f.Var)
	case KindShortCredential:
		return fmt.Sprintf("%s is shorter than 16 characters", f.Var)
	case KindUndocumentedVar:
		return fmt.Sprintf("%s is set in .env but not documented in .env.example", f.Var)
	case KindInvalidEnvValue:
		return fmt.Sprintf("%s does not look like a valid %s", f.Var, f.Detail)
	case KindUnprotectedRoute:
		return fmt.Sprintf("%s %s has no auth middleware (%s:%d)", f.Method, f.Path, f.File, f.Line)
	case KindLongTokenExpiry:
		return fmt.Sprintf("JWT expiry is %s", extract.FormatDuration(f.Seconds))
	case KindNoRoutes:
		return "no route registrations found"
	case KindMissingHealthEndpoint:
		return "no health-check endpoint (/health, /healthz, /ping, /status, /api/health)"
	case KindMissingCollectionGet:
		return fmt.Sprintf("POST %s has no GET on collection %s", f.Path, f.Detail)
	case KindMissingItemGet:
		return fmt.Sprintf("%s %s has no matching GET", f.Method, f.Path)
	case KindMissingEnvExample:
		return ".env.example not found"
	case KindMissingReadme:
		return "no README found"
	case KindShortReadme:
		return "README is under 100 characters"
	case KindReadmeMissingUsage:
		return fmt.Sprintf("README has no %s section", f.Detail)
	case KindMissingStandardDirs:
		return fmt.Sprintf("no standard project folders found (looked for %s)", f.Detail)
	case KindNoErrorHandler:
		return "no global error handler detected"
	case KindMissingPackageField:
		return fmt.Sprintf("package.json is missing %s", f.Var)
	case KindWildcardCORS:
		return fmt.Sprintf("CORS allows any origin (%s:%d)", f.File, f.Line)
	case KindNoCORS:
		return "no CORS configuration detected"
	case KindNoSecurityHeaders:
		return "no security headers detected (helmet or equivalent)"
	case KindNoRateLimit:
		return "no rate limiting detected"
	case KindEvalUsage:
		return fmt.Sprintf("eval() used (%s:%d)", f.File, f.Line)
	case KindDynamicRegex:
		return fmt.Sprintf("dynamic RegExp construction (%s:%d)", f.File, f.Line)
	case KindMissingPackageJSON:
		return "package.json not found"
	case KindInvalidPackageJSON:
		return "package.json is malformed"
	case KindNoLockFile:
		return "no lock file (package-lock.json, yarn.lock, or pnpm-lock.yaml)"
	case KindNoWebFramework:
		return "no known web framework in dependencies"
	case KindMissingSecurityPackages:
		return fmt.Sprintf("security packages not installed: %s", f.Detail)
	case KindTooManyDependencies:
		return fmt.Sprintf("%s dependencies declared; consider pruning", f.Detail)
	case KindNoConnectionErrorHandling:
		return fmt.Sprintf("no error handling on the %s connection", f.Detail)
	case KindNoConnectionPooling:
		return "no connection pooling detected"
	case KindNoMigrations:
		return "no migration files found"
	default:
		return string(f.Kind)
	}
}

// Result is one module's verdict: pass/fail plus accumulated findings and
// module-specific data. Immutable once returned from a check.
type Result struct {
	Module   string    `json:"module"`
	Passed   bool      `json:"passed"`
	Skipped  bool      `json:"skipped,omitempty"`
	Findings []Finding `json:"findings"`

	// module data
	Routes            []extract.RouteRecord `json:"routes,omitempty"`
	Unprotected       []extract.RouteRecord `json:"unprotected_routes,omitempty"`
	DBType            string                `json:"db_type,omitempty"`
	TotalDependencies int                   `json:"total_dependencies,omitempty"`
}

func newResult(module string) *Result {
	return &Result{Module: module, Findings: []Finding{}}
}

func (r *Result) issue(f Finding) {
	f.Severity = SeverityIssue
	r.Findings = append(r.Findings, f)
}

func (r *Result) warn(f Finding) {
	f.Severity = SeverityWarning
	r.Findings = append(r.Findings, f)
}

// finalize sets Passed from the accumulated findings. Skipped modules pass.
func (r *Result) finalize() *Result {
	r.Passed = r.Skipped || r.IssueCount() == 0
	return r
}

// Issues returns the blocking findings.
func (r *Result) Issues() []Finding {
	return r.bySeverity(SeverityIssue)
}

// Warnings returns the advisory findings.
func (r *Result) Warnings() []Finding {
	return r.bySeverity(SeverityWarning)
}

func (r *Result) bySeverity(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// IssueCount returns the number of blocking findings.
func (r *Result) IssueCount() int { return len(r.Issues()) }

// WarningCount returns the number of advisory findings.
func (r *Result) WarningCount() int { return len(r.Warnings()) }

// Status returns PASS, FAIL, or SKIP for display.
func (r *Result) Status() string {
	switch {
	case r.Skipped:
		return "SKIP"
	case r.Passed:
		return "PASS"
	default:
		return "FAIL"
	}
}

// joinSorted renders a name list for Detail fields in sorted order,
// leaving the caller's slice untouched.
func joinSorted(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
