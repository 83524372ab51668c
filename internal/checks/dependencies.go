package checks

import (
	"strconv"

	"github.com/shipcheck/shipcheck/internal/facts"
)

const maxDependencies = 100

var lockFiles = []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "npm-shrinkwrap.json"}

var webFrameworks = []string{"express", "fastify", "koa", "@hapi/hapi", "hapi", "@nestjs/core", "restify"}

// securityPackages maps the package checked for to its aliases.
var securityPackages = map[string][]string{
	"helmet":             {"helmet"},
	"cors":               {"cors"},
	"express-rate-limit": {"express-rate-limit", "rate-limiter-flexible"},
	"bcrypt":             {"bcrypt", "bcryptjs", "argon2"},
}

// Dependencies validates package.json health. A missing or malformed
// package.json is a hard issue with an early return; everything else is
// advisory.
func Dependencies(t Target) *Result {
	r := newResult("dependencies")

	if !facts.PackageJSONExists(t.Root) {
		r.issue(Finding{Kind: KindMissingPackageJSON})
		return r.finalize()
	}

	pkg, ok := facts.LoadPackageJSON(t.Root)
	if !ok {
		r.issue(Finding{Kind: KindInvalidPackageJSON})
		return r.finalize()
	}

	if !anyFileExists(t, lockFiles) {
		r.warn(Finding{Kind: KindNoLockFile})
	}

	if !hasAnyDependency(pkg, webFrameworks) {
		r.warn(Finding{Kind: KindNoWebFramework})
	}

	var missing []string
	for name, aliases := range securityPackages {
		if !hasAnyDependency(pkg, aliases) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		r.warn(Finding{Kind: KindMissingSecurityPackages, Detail: joinSorted(missing)})
	}

	total := len(pkg.AllDependencies())
	r.TotalDependencies = total
	if total > maxDependencies {
		r.warn(Finding{Kind: KindTooManyDependencies, Detail: strconv.Itoa(total)})
	}

	return r.finalize()
}

func anyFileExists(t Target, names []string) bool {
	for _, name := range names {
		if facts.FileExists(t.Join(name)) {
			return true
		}
	}
	return false
}

func hasAnyDependency(pkg *facts.PackageJSON, names []string) bool {
	for _, name := range names {
		if pkg.HasDependency(name) {
			return true
		}
	}
	return false
}
