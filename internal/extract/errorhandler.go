package extract

import "regexp"

// Global error-handling constructs. Any one of these counts as presence;
// the check does not care whether the handler is actually wired last.
var errorHandlerPatterns = []*regexp.Regexp{
	// express 4-ary error middleware: (err, req, res, next)
	regexp.MustCompile(`\(\s*err(?:or)?\s*,\s*req\s*,\s*res\s*,\s*next\s*\)`),
	regexp.MustCompile(`process\.on\(\s*['"](uncaughtException|unhandledRejection)['"]`),
	regexp.MustCompile(`\b(?:app|router)\.use\(\s*errorHandler\b`),
}

// HasGlobalErrorHandler reports whether the text contains a detectable
// global error-handling construct.
func HasGlobalErrorHandler(text string) bool {
	for _, re := range errorHandlerPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
