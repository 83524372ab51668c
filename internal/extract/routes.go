package extract

import (
	"regexp"
	"strings"
)

// RouteRecord is a single route registration found in source text.
// Path is the literal string inside the registration call, not a resolved URL.
type RouteRecord struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	File   string `json:"file"`
	Line   int    `json:"line"`
}

// Route registration patterns. Each variant is applied independently and the
// hits are unioned without dedup: the extractor over-approximates on purpose.
var (
	// app.get('/path' / router.post("/path"
	reRouteQuoted = regexp.MustCompile(`(?i)\b(?:app|router|Route)\s*\.\s*(get|post|put|delete|patch)\s*\(\s*['"]([^'"]+)['"]`)

	// template-literal paths: app.get(`/path`
	reRouteBacktick = regexp.MustCompile("(?i)\\b(?:app|router|Route)\\s*\\.\\s*(get|post|put|delete|patch)\\s*\\(\\s*`([^`]+)`")

	// chained form: router.route('/path').get(
	reRouteChained = regexp.MustCompile(`(?i)\b(?:app|router|Route)\s*\.\s*route\s*\(\s*['"]([^'"]+)['"]\s*\)\s*\.\s*(get|post|put|delete|patch)\s*\(`)
)

// Routes scans source text for route registrations of the shape
// <identifier>.<verb>(<quoted path>. Matching is case-normalized on the verb
// and literal on the path. The result preserves pattern order, then text order.
func Routes(file, text string) []RouteRecord {
	var records []RouteRecord

	for _, m := range reRouteQuoted.FindAllStringSubmatchIndex(text, -1) {
		records = append(records, RouteRecord{
			Method: strings.ToUpper(text[m[2]:m[3]]),
			Path:   text[m[4]:m[5]],
			File:   file,
			Line:   lineAt(text, m[0]),
		})
	}

	for _, m := range reRouteBacktick.FindAllStringSubmatchIndex(text, -1) {
		records = append(records, RouteRecord{
			Method: strings.ToUpper(text[m[2]:m[3]]),
			Path:   text[m[4]:m[5]],
			File:   file,
			Line:   lineAt(text, m[0]),
		})
	}

	for _, m := range reRouteChained.FindAllStringSubmatchIndex(text, -1) {
		records = append(records, RouteRecord{
			Method: strings.ToUpper(text[m[4]:m[5]]),
			Path:   text[m[2]:m[3]],
			File:   file,
			Line:   lineAt(text, m[0]),
		})
	}

	return records
}

// lineAt returns the 1-based line number of byte offset pos in text.
func lineAt(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}
