package facts

import (
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// EnvMap is an ordered KEY=VALUE mapping parsed from a dotenv file.
// Keys are case-sensitive and unique; when a key is assigned twice the last
// occurrence wins but the key keeps its first-seen position.
type EnvMap struct {
	keys   []string
	values map[string]string
}

var reEnvKey = regexp.MustCompile(`^\s*(?:export\s+)?([A-Za-z_][A-Za-z0-9_.]*)\s*=`)

// ParseEnv parses dotenv content. Blank lines and #-comments are ignored,
// surrounding quotes are stripped from values, and malformed lines are
// skipped rather than failing the whole file.
func ParseEnv(content string) *EnvMap {
	m := &EnvMap{values: make(map[string]string)}

	for _, line := range strings.Split(content, "\n") {
		km := reEnvKey.FindStringSubmatch(line)
		if km == nil {
			continue
		}
		key := km[1]

		// godotenv handles quoting, escapes, and export prefixes.
		parsed, err := godotenv.Unmarshal(line)
		value, ok := parsed[key]
		if err != nil || !ok {
			// fall back to a naive split so an odd line still yields its key
			value = strings.Trim(strings.TrimSpace(line[strings.Index(line, "=")+1:]), `"'`)
		}

		if _, seen := m.values[key]; !seen {
			m.keys = append(m.keys, key)
		}
		m.values[key] = value
	}

	return m
}

// LoadEnv reads and parses a dotenv file. A missing or unreadable file
// yields an empty map, never an error: absent evidence is handled by the
// checks, not by the parser.
func LoadEnv(path string) *EnvMap {
	data, err := os.ReadFile(path)
	if err != nil {
		return &EnvMap{values: make(map[string]string)}
	}
	return ParseEnv(string(data))
}

// Keys returns variable names in first-seen order.
func (m *EnvMap) Keys() []string {
	return m.keys
}

// Get returns the value for key and whether it exists.
func (m *EnvMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key exists.
func (m *EnvMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of distinct keys.
func (m *EnvMap) Len() int {
	return len(m.keys)
}
