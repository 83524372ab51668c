package facts

import (
	"os"
	"time"

	"github.com/shipcheck/shipcheck/internal/extract"
)

// FileFacts bundles a source file's content with the facts extracted from it.
type FileFacts struct {
	Content string
	Routes  []extract.RouteRecord
}

type storeEntry struct {
	modTime time.Time
	facts   FileFacts
}

// Store caches per-file extraction results keyed by path + modification time,
// so independent checks (api and auth both re-derive routes) share the
// extraction cost without sharing logic. Not safe for concurrent use.
type Store struct {
	entries map[string]storeEntry
}

// NewStore returns an empty fact store.
func NewStore() *Store {
	return &Store{entries: make(map[string]storeEntry)}
}

// File returns content and routes for path, reading and extracting on first
// access or when the file has changed since. Returns false when the file
// cannot be read.
func (s *Store) File(path string) (FileFacts, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFacts{}, false
	}

	if entry, ok := s.entries[path]; ok && entry.modTime.Equal(info.ModTime()) {
		return entry.facts, true
	}

	content, ok := ReadFile(path)
	if !ok {
		return FileFacts{}, false
	}

	facts := FileFacts{
		Content: content,
		Routes:  extract.Routes(path, content),
	}
	s.entries[path] = storeEntry{modTime: info.ModTime(), facts: facts}
	return facts, true
}
