package extract

import "regexp"

// sensitivePatterns is the fixed ordered list of path shapes that require
// authentication. Classification ignores the HTTP method: a sensitive GET is
// held to the same bar as a sensitive POST. The list is tolerant of false
// positives.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/admin`),
	regexp.MustCompile(`(?i)/users`),
	regexp.MustCompile(`(?i)/profile`),
	regexp.MustCompile(`(?i)/settings`),
	regexp.MustCompile(`(?i)/account`),
	regexp.MustCompile(`(?i)/dashboard`),
	regexp.MustCompile(`(?i)/(delete|update|create|edit)(/|$)`),
	regexp.MustCompile(`(?i)/password`),
	regexp.MustCompile(`(?i)/(change|reset)-password`),
	regexp.MustCompile(`(?i)^/api/v\d+/.*(user|admin|auth|profile|settings)`),
}

// IsSensitivePath reports whether a route path matches any of the fixed
// sensitive path shapes.
func IsSensitivePath(path string) bool {
	for _, re := range sensitivePatterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
