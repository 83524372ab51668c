package checks

import (
	"path/filepath"

	"github.com/shipcheck/shipcheck/internal/facts"
)

// DefaultFileCap bounds how many matched source files a single module opens.
// A soft precision/cost trade-off, not a correctness guarantee.
const DefaultFileCap = 40

// Target is the project under analysis. The root is always explicit; no
// check reads the process working directory.
type Target struct {
	Root    string
	FileCap int
	Store   *facts.Store
}

// NewTarget builds a Target rooted at dir with the default file cap.
func NewTarget(dir string) Target {
	return Target{
		Root:    dir,
		FileCap: DefaultFileCap,
		Store:   facts.NewStore(),
	}
}

// SourceFiles lists capped backend source files under the target root.
func (t Target) SourceFiles() []string {
	limit := t.FileCap
	if limit == 0 {
		limit = DefaultFileCap
	}
	return facts.ListFiles(t.Root, facts.SourceExts, limit)
}

// Join resolves a path relative to the target root.
func (t Target) Join(elem ...string) string {
	return filepath.Join(append([]string{t.Root}, elem...)...)
}

// Rel shortens an absolute path for display, falling back to the input.
func (t Target) Rel(path string) string {
	rel, err := filepath.Rel(t.Root, path)
	if err != nil {
		return path
	}
	return rel
}
