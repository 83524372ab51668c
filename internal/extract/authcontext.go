package extract

import (
	"regexp"
	"strings"
)

// contextWindow is the number of lines inspected on each side of the target
// line when looking for auth middleware.
const contextWindow = 2

var (
	reAuthToken = regexp.MustCompile(`(?i)\b(authenticate|auth|jwt|verifyToken|requireAuth|isAuthenticated)\b`)

	// known auth library calls
	reAuthLibrary = regexp.MustCompile(`(?i)\b(passport\.[a-z]+|expressjwt|checkJwt|ensureLoggedIn)\b`)
)

// HasAuthContext reports whether the five-line window around line (two lines
// before through two after) contains an auth-flavored identifier, an auth
// library call, or a middleware reference that mentions auth. Returns a plain
// boolean; there is no confidence score.
func HasAuthContext(text string, line int) bool {
	lines := strings.Split(text, "\n")
	if line < 1 || line > len(lines) {
		return false
	}

	start := line - 1 - contextWindow
	if start < 0 {
		start = 0
	}
	end := line + contextWindow
	if end > len(lines) {
		end = len(lines)
	}

	window := strings.Join(lines[start:end], "\n")

	if reAuthToken.MatchString(window) || reAuthLibrary.MatchString(window) {
		return true
	}

	// "middleware" followed eventually by "auth"
	lower := strings.ToLower(window)
	if idx := strings.Index(lower, "middleware"); idx >= 0 {
		if strings.Contains(lower[idx:], "auth") {
			return true
		}
	}

	return false
}
