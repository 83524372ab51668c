package checks

import (
	"regexp"
	"strings"

	"github.com/shipcheck/shipcheck/internal/extract"
	"github.com/shipcheck/shipcheck/internal/facts"
)

const minReadmeLen = 100

var readmeNames = []string{"README.md", "README", "readme.md"}

// standardDirs are conventional backend layout folders; any one (directly or
// under src/) counts as structure.
var standardDirs = []string{"routes", "controllers", "models", "middleware", "services", "config"}

var (
	reReadmeInstall = regexp.MustCompile(`(?i)\b(install|installation|setup|getting started)\b`)
	reReadmeUsage   = regexp.MustCompile(`(?i)\b(usage|run|running|example|quick start)\b`)
)

// Project checks repository hygiene: .env.example, README quality, layout
// folders, a global error handler, and package.json fields.
func Project(t Target) *Result {
	r := newResult("project")

	if !facts.FileExists(t.Join(".env.example")) {
		r.issue(Finding{Kind: KindMissingEnvExample})
	}

	checkReadme(r, t)
	checkLayout(r, t)
	checkErrorHandler(r, t)
	checkPackageFields(r, t)

	return r.finalize()
}

func checkReadme(r *Result, t Target) {
	var content string
	found := false
	for _, name := range readmeNames {
		if text, ok := facts.ReadFile(t.Join(name)); ok {
			content = text
			found = true
			break
		}
	}

	if !found {
		r.issue(Finding{Kind: KindMissingReadme})
		return
	}

	if len(strings.TrimSpace(content)) <= minReadmeLen {
		r.warn(Finding{Kind: KindShortReadme})
	}
	if !reReadmeInstall.MatchString(content) {
		r.warn(Finding{Kind: KindReadmeMissingUsage, Detail: "install"})
	}
	if !reReadmeUsage.MatchString(content) {
		r.warn(Finding{Kind: KindReadmeMissingUsage, Detail: "usage"})
	}
}

func checkLayout(r *Result, t Target) {
	for _, dir := range standardDirs {
		if facts.DirExists(t.Join(dir)) || facts.DirExists(t.Join("src", dir)) {
			return
		}
	}
	r.warn(Finding{Kind: KindMissingStandardDirs, Detail: joinSorted(standardDirs)})
}

func checkErrorHandler(r *Result, t Target) {
	for _, path := range t.SourceFiles() {
		ff, ok := t.Store.File(path)
		if !ok {
			continue
		}
		if extract.HasGlobalErrorHandler(ff.Content) {
			return
		}
	}
	r.issue(Finding{Kind: KindNoErrorHandler})
}

func checkPackageFields(r *Result, t Target) {
	pkg, ok := facts.LoadPackageJSON(t.Root)
	if !ok {
		r.issue(Finding{Kind: KindInvalidPackageJSON})
		return
	}

	if pkg.Name == "" {
		r.warn(Finding{Kind: KindMissingPackageField, Var: "name"})
	}
	if pkg.Description == "" {
		r.warn(Finding{Kind: KindMissingPackageField, Var: "description"})
	}
	if _, ok := pkg.Scripts["start"]; !ok {
		r.warn(Finding{Kind: KindMissingPackageField, Var: "scripts.start"})
	}
}
