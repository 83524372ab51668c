package checks

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shipcheck/shipcheck/internal/facts"
)

const (
	minSecretLen     = 32
	minCredentialLen = 16
)

var (
	reURLValue   = regexp.MustCompile(`^[a-z][a-z0-9+.-]*://\S+$`)
	reEmailValue = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// template placeholders are exempt from format validation
	rePlaceholder = regexp.MustCompile(`(?i)(your[_-]?|change[_-]?me|changeme|example|placeholder|xxx+|<[^>]*>)`)
)

// Env validates .env against .env.example: documented keys must be present,
// secret-like values must be non-empty and long enough, and URL/EMAIL/PORT
// values must look like what their names claim.
func Env(t Target) *Result {
	r := newResult("env")

	envPath := t.Join(".env")
	if !facts.FileExists(envPath) {
		r.issue(Finding{Kind: KindMissingEnvFile})
	}

	env := facts.LoadEnv(envPath)
	example := facts.LoadEnv(t.Join(".env.example"))

	// .env.example keys must be a subset of .env keys
	for _, key := range example.Keys() {
		if !env.Has(key) {
			r.issue(Finding{Kind: KindMissingEnvVar, Var: key})
		}
	}

	for _, key := range env.Keys() {
		value, _ := env.Get(key)
		checkSecretStrength(r, key, value)
		checkValueFormat(r, key, value)

		if example.Len() > 0 && !example.Has(key) {
			r.warn(Finding{Kind: KindUndocumentedVar, Var: key})
		}
	}

	return r.finalize()
}

// checkSecretStrength flags empty or short secret-like values. SECRET-named
// keys are held to 32 characters as an issue; PASSWORD/KEY-named keys to 16
// as a warning. TOKEN-named keys are only checked for emptiness.
func checkSecretStrength(r *Result, key, value string) {
	upper := strings.ToUpper(key)
	secretLike := strings.Contains(upper, "SECRET") ||
		strings.Contains(upper, "KEY") ||
		strings.Contains(upper, "PASSWORD") ||
		strings.Contains(upper, "TOKEN")
	if !secretLike {
		return
	}

	if value == "" {
		r.issue(Finding{Kind: KindEmptySecret, Var: key})
		return
	}

	switch {
	case strings.Contains(upper, "SECRET"):
		if len(value) < minSecretLen {
			r.issue(Finding{Kind: KindWeakSecret, Var: key})
		}
	case strings.Contains(upper, "PASSWORD"), strings.Contains(upper, "KEY"):
		if len(value) < minCredentialLen {
			r.warn(Finding{Kind: KindShortCredential, Var: key})
		}
	}
}

// checkValueFormat validates URL/EMAIL/PORT-named keys against their implied
// format, unless the value is a template placeholder.
func checkValueFormat(r *Result, key, value string) {
	if value == "" || rePlaceholder.MatchString(value) {
		return
	}

	upper := strings.ToUpper(key)
	switch {
	case strings.Contains(upper, "URL"):
		if !reURLValue.MatchString(value) {
			r.issue(Finding{Kind: KindInvalidEnvValue, Var: key, Detail: "URL"})
		}
	case strings.Contains(upper, "EMAIL"):
		if !reEmailValue.MatchString(value) {
			r.issue(Finding{Kind: KindInvalidEnvValue, Var: key, Detail: "email address"})
		}
	case strings.Contains(upper, "PORT"):
		if n, err := strconv.Atoi(value); err != nil || n < 1 || n > 65535 {
			r.issue(Finding{Kind: KindInvalidEnvValue, Var: key, Detail: "port number"})
		}
	}
}
