package policy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/checks"
	"gopkg.in/yaml.v3"
)

// Policy defines enforcement rules layered on top of the aggregate verdict.
// A project can pass every module and still be blocked by policy, or cap
// how much advisory noise it tolerates.
type Policy struct {
	Version string `yaml:"version"`
	Rules   Rules  `yaml:"rules"`
}

// Rules contains all configurable policy rules.
type Rules struct {
	MaxIssues      *int     `yaml:"max_issues,omitempty"`
	MaxWarnings    *int     `yaml:"max_warnings,omitempty"`
	RequireModules []string `yaml:"require_modules,omitempty"`
	ForbidKinds    []string `yaml:"forbid_kinds,omitempty"`
}

// Violation is a single policy failure.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result holds the outcome of a policy check.
type Result struct {
	Pass       bool        `json:"pass"`
	Violations []Violation `json:"violations"`
}

// LoadFromFile reads a policy file. A missing file yields (nil, nil):
// no policy means no extra constraints.
func LoadFromFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read policy: %w", err)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}

	return &p, nil
}

// FindPolicyFile searches for a policy file starting at the project root and
// walking up to the filesystem root.
func FindPolicyFile(root string) string {
	names := []string{".shipcheck-policy.yaml", ".shipcheck-policy.yml"}

	dir, err := filepath.Abs(root)
	if err != nil {
		return ""
	}

	for {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// Evaluate checks an aggregate report against the policy rules.
func (p *Policy) Evaluate(report *aggregate.Report) *Result {
	if p == nil {
		return &Result{Pass: true}
	}

	var violations []Violation

	if p.Rules.MaxIssues != nil && report.TotalIssues > *p.Rules.MaxIssues {
		violations = append(violations, Violation{
			Rule:    "max_issues",
			Message: fmt.Sprintf("total issues %d exceeds limit %d", report.TotalIssues, *p.Rules.MaxIssues),
		})
	}

	if p.Rules.MaxWarnings != nil && report.TotalWarnings > *p.Rules.MaxWarnings {
		violations = append(violations, Violation{
			Rule:    "max_warnings",
			Message: fmt.Sprintf("total warnings %d exceeds limit %d", report.TotalWarnings, *p.Rules.MaxWarnings),
		})
	}

	for _, name := range p.Rules.RequireModules {
		if report.ModuleResult(name) == nil {
			violations = append(violations, Violation{
				Rule:    "require_modules",
				Message: fmt.Sprintf("required module %q was not run", name),
			})
		}
	}

	if len(p.Rules.ForbidKinds) > 0 {
		forbidden := make(map[checks.Kind]bool, len(p.Rules.ForbidKinds))
		for _, k := range p.Rules.ForbidKinds {
			forbidden[checks.Kind(k)] = true
		}
		for _, result := range report.Results {
			for _, f := range result.Findings {
				if forbidden[f.Kind] {
					violations = append(violations, Violation{
						Rule:    "forbid_kinds",
						Message: fmt.Sprintf("forbidden finding %q in module %s", f.Kind, result.Module),
					})
				}
			}
		}
	}

	return &Result{
		Pass:       len(violations) == 0,
		Violations: violations,
	}
}
