package checks

import (
	"regexp"
	"strings"
)

var (
	reCORSIndicator   = regexp.MustCompile(`(?i)\bcors\s*\(|Access-Control-Allow-Origin`)
	reWildcardOrigin  = regexp.MustCompile(`origin\s*:\s*['"]\*['"]|Access-Control-Allow-Origin['"]?\s*,\s*['"]\*['"]`)
	reSecurityHeaders = regexp.MustCompile(`(?i)\bhelmet\b|X-Frame-Options|Content-Security-Policy|X-Content-Type-Options|Strict-Transport-Security`)
	reRateLimit       = regexp.MustCompile(`(?i)rate[-_]?limit`)
	reEvalCall        = regexp.MustCompile(`\beval\s*\(`)

	// new RegExp(x) where the first argument is not a string literal
	reDynamicRegexp = regexp.MustCompile("new\\s+RegExp\\s*\\(\\s*[^'\"`)\\s]")
)

// Security scans a capped file set for CORS, security-header, and rate-limit
// indicators, plus dangerous constructs.
func Security(t Target) *Result {
	r := newResult("security")

	corsSeen := false
	headersSeen := false
	rateLimitSeen := false

	for _, path := range t.SourceFiles() {
		ff, ok := t.Store.File(path)
		if !ok {
			continue
		}
		rel := t.Rel(path)

		if reCORSIndicator.MatchString(ff.Content) {
			corsSeen = true
		}
		if reSecurityHeaders.MatchString(ff.Content) {
			headersSeen = true
		}
		if reRateLimit.MatchString(ff.Content) {
			rateLimitSeen = true
		}

		for _, m := range reWildcardOrigin.FindAllStringIndex(ff.Content, -1) {
			r.issue(Finding{Kind: KindWildcardCORS, File: rel, Line: lineOf(ff.Content, m[0])})
		}
		for _, m := range reEvalCall.FindAllStringIndex(ff.Content, -1) {
			r.issue(Finding{Kind: KindEvalUsage, File: rel, Line: lineOf(ff.Content, m[0])})
		}
		for _, m := range reDynamicRegexp.FindAllStringIndex(ff.Content, -1) {
			r.warn(Finding{Kind: KindDynamicRegex, File: rel, Line: lineOf(ff.Content, m[0])})
		}
	}

	if !headersSeen {
		r.issue(Finding{Kind: KindNoSecurityHeaders})
	}
	if !corsSeen {
		r.warn(Finding{Kind: KindNoCORS})
	}
	if !rateLimitSeen {
		r.warn(Finding{Kind: KindNoRateLimit})
	}

	return r.finalize()
}

func lineOf(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}
