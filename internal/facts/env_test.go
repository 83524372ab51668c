package facts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseEnv(t *testing.T) {
	content := `# database settings
DATABASE_URL=postgres://localhost/app

JWT_SECRET="abcdefghijklmnopqrstuvwxyz012345"
export PORT=3000
QUOTED='single quoted'
SPACED = padded
`

	m := ParseEnv(content)

	wantKeys := []string{"DATABASE_URL", "JWT_SECRET", "PORT", "QUOTED", "SPACED"}
	if !reflect.DeepEqual(m.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", m.Keys(), wantKeys)
	}

	tests := map[string]string{
		"DATABASE_URL": "postgres://localhost/app",
		"JWT_SECRET":   "abcdefghijklmnopqrstuvwxyz012345",
		"PORT":         "3000",
		"QUOTED":       "single quoted",
	}
	for key, want := range tests {
		got, ok := m.Get(key)
		if !ok {
			t.Errorf("Get(%q): missing", key)
			continue
		}
		if got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestParseEnvLastOccurrenceWins(t *testing.T) {
	m := ParseEnv("KEY=first\nOTHER=x\nKEY=second\n")

	if got, _ := m.Get("KEY"); got != "second" {
		t.Errorf("Get(KEY) = %q, want %q", got, "second")
	}
	// the key keeps its first-seen position and stays unique
	wantKeys := []string{"KEY", "OTHER"}
	if !reflect.DeepEqual(m.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", m.Keys(), wantKeys)
	}
}

func TestParseEnvMalformedLinesSkipped(t *testing.T) {
	m := ParseEnv("not a pair\n=nokey\nGOOD=yes\n")

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (keys: %v)", m.Len(), m.Keys())
	}
	if got, _ := m.Get("GOOD"); got != "yes" {
		t.Errorf("Get(GOOD) = %q, want %q", got, "yes")
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	m := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	if m.Len() != 0 {
		t.Errorf("missing file should parse as empty, got %d keys", m.Len())
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("A=1\nB=2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m := LoadEnv(path)
	if m.Len() != 2 || !m.Has("A") || !m.Has("B") {
		t.Errorf("unexpected map: keys=%v", m.Keys())
	}
}
