package fix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/checks"
	"github.com/shipcheck/shipcheck/internal/facts"
)

// Action is one remediation derived from a finding. File actions carry
// template content to write; the rest carry a suggestion string.
type Action struct {
	Kind       checks.Kind `json:"kind"`
	Path       string      `json:"path,omitempty"`
	Content    string      `json:"-"`
	Suggestion string      `json:"suggestion"`
}

// IsFileAction reports whether applying the action writes a file.
func (a Action) IsFileAction() bool {
	return a.Path != ""
}

// Plan maps report findings to remediation actions. Matching is on finding
// kind only, never on rendered text. Kinds with no automated remedy are
// left out.
func Plan(report *aggregate.Report, root string) []Action {
	var actions []Action
	seen := make(map[checks.Kind]bool)

	var missingVars []string

	for _, result := range report.Results {
		for _, f := range result.Findings {
			if f.Kind == checks.KindMissingEnvVar {
				missingVars = append(missingVars, f.Var)
				continue
			}
			if seen[f.Kind] {
				continue
			}
			if action, ok := actionFor(f, root); ok {
				seen[f.Kind] = true
				actions = append(actions, action)
			}
		}
	}

	if len(missingVars) > 0 {
		actions = append(actions, Action{
			Kind:       checks.KindMissingEnvVar,
			Suggestion: fmt.Sprintf("add to .env: %s", strings.Join(missingVars, ", ")),
		})
	}

	return actions
}

func actionFor(f checks.Finding, root string) (Action, bool) {
	switch f.Kind {
	case checks.KindMissingEnvExample:
		return Action{
			Kind:       f.Kind,
			Path:       filepath.Join(root, ".env.example"),
			Content:    envExampleTemplate(root),
			Suggestion: "create .env.example documenting every variable the app reads",
		}, true

	case checks.KindMissingReadme:
		return Action{
			Kind:       f.Kind,
			Path:       filepath.Join(root, "README.md"),
			Content:    readmeTemplate(root),
			Suggestion: "create a README with install and usage sections",
		}, true

	case checks.KindMissingEnvFile:
		return Action{
			Kind:       f.Kind,
			Suggestion: "create .env from .env.example and fill in real values",
		}, true

	case checks.KindWeakSecret, checks.KindShortCredential:
		return Action{
			Kind:       f.Kind,
			Suggestion: fmt.Sprintf("regenerate %s with at least 32 random characters (openssl rand -hex 32)", f.Var),
		}, true

	case checks.KindMissingHealthEndpoint:
		return Action{
			Kind:       f.Kind,
			Suggestion: "add a health route: app.get('/health', (req, res) => res.json({ ok: true }))",
		}, true

	case checks.KindUnprotectedRoute:
		return Action{
			Kind:       f.Kind,
			Suggestion: "add auth middleware to sensitive routes, e.g. app.get(path, authenticate, handler)",
		}, true

	case checks.KindLongTokenExpiry:
		return Action{
			Kind:       f.Kind,
			Suggestion: "shorten the JWT expiry (7d or less) and issue refresh tokens instead",
		}, true

	case checks.KindNoSecurityHeaders:
		return Action{
			Kind:       f.Kind,
			Suggestion: "npm install helmet && app.use(helmet())",
		}, true

	case checks.KindNoRateLimit:
		return Action{
			Kind:       f.Kind,
			Suggestion: "npm install express-rate-limit and apply it to public endpoints",
		}, true

	case checks.KindNoLockFile:
		return Action{
			Kind:       f.Kind,
			Suggestion: "run npm install and commit the generated package-lock.json",
		}, true

	case checks.KindNoErrorHandler:
		return Action{
			Kind:       f.Kind,
			Suggestion: "register a global error handler: app.use((err, req, res, next) => { ... })",
		}, true

	case checks.KindNoConnectionErrorHandling:
		return Action{
			Kind:       f.Kind,
			Suggestion: "attach .catch() or an 'error' listener to the database connection",
		}, true

	default:
		return Action{}, false
	}
}

// envExampleTemplate documents the keys of an existing .env with placeholder
// values, or falls back to a generic skeleton.
func envExampleTemplate(root string) string {
	env := facts.LoadEnv(filepath.Join(root, ".env"))
	if env.Len() == 0 {
		return "# Environment configuration\nPORT=3000\nDATABASE_URL=\nJWT_SECRET=\n"
	}

	var b strings.Builder
	b.WriteString("# Environment configuration\n")
	for _, key := range env.Keys() {
		b.WriteString(key)
		b.WriteString("=\n")
	}
	return b.String()
}

func readmeTemplate(root string) string {
	name := filepath.Base(root)
	return fmt.Sprintf(`# %s

## Installation

`+"```bash\nnpm install\n```"+`

## Usage

`+"```bash\nnpm start\n```"+`

## Configuration

Copy .env.example to .env and fill in the values.
`, name)
}

// Apply executes the plan. In dry-run mode every action is printed; with
// apply set, file actions are written. Existing files are never
// overwritten.
func Apply(actions []Action, apply bool, w io.Writer) error {
	if len(actions) == 0 {
		fmt.Fprintln(w, "Nothing to fix.")
		return nil
	}

	for _, a := range actions {
		switch {
		case !a.IsFileAction():
			fmt.Fprintf(w, "  suggest: %s\n", a.Suggestion)

		case !apply:
			fmt.Fprintf(w, "  would create: %s\n", a.Path)

		case facts.FileExists(a.Path):
			fmt.Fprintf(w, "  skipped (exists): %s\n", a.Path)

		default:
			if err := os.WriteFile(a.Path, []byte(a.Content), 0644); err != nil {
				return fmt.Errorf("write %s: %w", a.Path, err)
			}
			fmt.Fprintf(w, "  created: %s\n", a.Path)
		}
	}

	return nil
}
