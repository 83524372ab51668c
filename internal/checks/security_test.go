package checks

import "testing"

func TestSecurityHardenedProject(t *testing.T) {
	target := project(t, map[string]string{
		"app.js": "const helmet = require('helmet')\napp.use(helmet())\napp.use(cors({ origin: 'https://app.corp.io' }))\napp.use(rateLimit({ max: 100 }))\n",
	})

	r := Security(target)

	if !r.Passed {
		t.Errorf("expected pass, issues: %+v", r.Issues())
	}
	if len(r.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %+v", r.Warnings())
	}
}

func TestSecurityWildcardCORS(t *testing.T) {
	target := project(t, map[string]string{
		"app.js": "app.use(helmet())\napp.use(cors({ origin: '*' }))\n",
	})

	r := Security(target)

	issues := r.Issues()
	if countKind(issues, KindWildcardCORS) != 1 {
		t.Fatalf("expected a wildcard-cors issue, got %+v", issues)
	}
	for _, f := range issues {
		if f.Kind == KindWildcardCORS && f.Line != 2 {
			t.Errorf("wildcard line = %d, want 2", f.Line)
		}
	}
}

func TestSecurityNoHeaders(t *testing.T) {
	target := project(t, map[string]string{
		"app.js": "app.get('/health', h)\n",
	})

	r := Security(target)

	if countKind(r.Issues(), KindNoSecurityHeaders) != 1 {
		t.Errorf("absent security headers should be an issue: %+v", r.Issues())
	}
	if countKind(r.Warnings(), KindNoCORS) != 1 || countKind(r.Warnings(), KindNoRateLimit) != 1 {
		t.Errorf("absent cors and rate limit should each warn: %+v", r.Warnings())
	}
}

func TestSecurityEvalUsage(t *testing.T) {
	target := project(t, map[string]string{
		"app.js": "app.use(helmet())\n\nconst out = eval(userInput)\n",
	})

	r := Security(target)

	issues := r.Issues()
	if countKind(issues, KindEvalUsage) != 1 {
		t.Fatalf("expected an eval issue, got %+v", issues)
	}
	for _, f := range issues {
		if f.Kind == KindEvalUsage && f.Line != 3 {
			t.Errorf("eval line = %d, want 3", f.Line)
		}
	}
}

func TestSecurityDynamicRegexp(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"dynamic", "const re = new RegExp(userInput)\n", 1},
		{"literal string is fine", "const re = new RegExp('^/api')\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := project(t, map[string]string{"app.js": "app.use(helmet())\n" + tt.code})
			r := Security(target)
			if got := countKind(r.Warnings(), KindDynamicRegex); got != tt.want {
				t.Errorf("dynamic-regex warnings = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSecurityEmptyProject(t *testing.T) {
	target := project(t, nil)
	r := Security(target)
	if r.Passed {
		t.Error("no files means no security headers, module must fail")
	}
}
