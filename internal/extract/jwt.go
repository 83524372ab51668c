package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit multipliers in seconds. Year and month are fixed at 365 and 30
// days, not calendar-aware.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// jwtExpiryPatterns is ordered: the first pattern with a hit wins and later
// patterns are not consulted, even if the same file configures the expiry
// more than once.
var jwtExpiryPatterns = []*regexp.Regexp{
	// expiresIn: '30d', expiresIn = "1h"
	regexp.MustCompile(`expiresIn\s*[:=]\s*['"](\d+)\s*([a-zA-Z]*)['"]`),
	// expiresIn: 3600 (bare numbers are seconds)
	regexp.MustCompile(`expiresIn\s*[:=]\s*(\d+)\b()`),
	// JWT_EXPIRY=7d, JWT_EXPIRES_IN: "12h"
	regexp.MustCompile(`JWT_EXPIR[A-Z_]*\s*[:=]\s*['"]?(\d+)\s*([a-zA-Z]*)['"]?`),
}

// JWTExpiry scans text for a token-expiry assignment and converts it to
// seconds. Only the first match across the ordered pattern list is used.
// The second return is false when no expiry configuration was found.
func JWTExpiry(text string) (int64, bool) {
	for _, re := range jwtExpiryPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		return value * unitSeconds(m[2]), true
	}
	return 0, false
}

// unitSeconds maps a duration unit token to its multiplier in seconds.
// An unmarked number is seconds. Lower-case "m" means minutes; months are
// "M" or a spelled-out form.
func unitSeconds(unit string) int64 {
	switch unit {
	case "", "s", "sec", "secs", "second", "seconds":
		return 1
	case "m", "min", "mins", "minute", "minutes":
		return secondsPerMinute
	case "M", "mo", "month", "months":
		return secondsPerMonth
	}

	switch strings.ToLower(unit) {
	case "h", "hr", "hrs", "hour", "hours":
		return secondsPerHour
	case "d", "day", "days":
		return secondsPerDay
	case "y", "yr", "year", "years":
		return secondsPerYear
	}

	// Unknown units degrade to seconds rather than failing the extraction.
	return 1
}

// FormatDuration renders a second count in the largest unit that divides it
// cleanly enough to read, e.g. 2592000 -> "30 days".
func FormatDuration(seconds int64) string {
	format := func(n int64, unit string) string {
		if n == 1 {
			return "1 " + unit
		}
		return strconv.FormatInt(n, 10) + " " + unit + "s"
	}

	switch {
	case seconds >= secondsPerYear && seconds%secondsPerYear == 0:
		return format(seconds/secondsPerYear, "year")
	case seconds >= secondsPerDay && seconds%secondsPerDay == 0:
		return format(seconds/secondsPerDay, "day")
	case seconds >= secondsPerHour && seconds%secondsPerHour == 0:
		return format(seconds/secondsPerHour, "hour")
	case seconds >= secondsPerMinute && seconds%secondsPerMinute == 0:
		return format(seconds/secondsPerMinute, "minute")
	default:
		return format(seconds, "second")
	}
}
