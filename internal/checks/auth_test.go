package checks

import "testing"

func TestAuthUnprotectedSensitiveRoute(t *testing.T) {
	target := project(t, map[string]string{
		"routes.js": "app.get('/accounts', handler)\n",
	})

	r := Auth(target)

	if got := countKind(r.Issues(), KindUnprotectedRoute); got != 1 {
		t.Fatalf("expected exactly one unprotected-route issue, got %d: %+v", got, r.Findings)
	}
	if len(r.Unprotected) != 1 || r.Unprotected[0].Path != "/accounts" {
		t.Errorf("unprotected route list = %+v", r.Unprotected)
	}
	if r.Passed {
		t.Error("unprotected sensitive route must fail the module")
	}
}

func TestAuthProtectedSensitiveRoute(t *testing.T) {
	target := project(t, map[string]string{
		"routes.js": "app.get('/admin/users', auth, handler)\n",
	})

	r := Auth(target)

	if got := countKind(r.Issues(), KindUnprotectedRoute); got != 0 {
		t.Errorf("auth token in window must protect the route, got %+v", r.Issues())
	}
	if !r.Passed {
		t.Errorf("expected pass, issues: %+v", r.Issues())
	}
}

func TestAuthTokenInWindowAboveRoute(t *testing.T) {
	target := project(t, map[string]string{
		"routes.js": "const requireAuth = require('./middleware')\napp.get('/dashboard', handler)\n",
	})

	r := Auth(target)
	if !r.Passed {
		t.Errorf("token two lines above should count, issues: %+v", r.Issues())
	}
}

func TestAuthPublicRoutesIgnored(t *testing.T) {
	target := project(t, map[string]string{
		"routes.js": "app.get('/health', handler)\napp.post('/login', handler)\n",
	})

	r := Auth(target)
	if countKind(r.Findings, KindUnprotectedRoute) != 0 {
		t.Errorf("public routes must not be flagged: %+v", r.Findings)
	}
}

func TestAuthJWTExpiry(t *testing.T) {
	tests := []struct {
		name         string
		expiresIn    string
		wantIssues   int
		wantWarnings int
	}{
		{"one hour is fine", "'1h'", 0, 0},
		{"seven days is fine", "'7d'", 0, 0},
		{"thirty days warns", "'30d'", 0, 1},
		{"four hundred days is an issue", "'400d'", 1, 0},
		{"two years is an issue", "'2y'", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := project(t, map[string]string{
				"token.js": "jwt.sign(payload, secret, { expiresIn: " + tt.expiresIn + " })\n",
			})
			r := Auth(target)
			if got := countKind(r.Issues(), KindLongTokenExpiry); got != tt.wantIssues {
				t.Errorf("expiry issues = %d, want %d", got, tt.wantIssues)
			}
			if got := countKind(r.Warnings(), KindLongTokenExpiry); got != tt.wantWarnings {
				t.Errorf("expiry warnings = %d, want %d", got, tt.wantWarnings)
			}
		})
	}
}

func TestAuthNoRouteFiles(t *testing.T) {
	target := project(t, nil)

	r := Auth(target)

	if !r.Passed {
		t.Errorf("no files means nothing to fail on, issues: %+v", r.Issues())
	}
	if countKind(r.Warnings(), KindNoRoutes) != 1 {
		t.Errorf("expected a no-routes warning, got %+v", r.Findings)
	}
}
