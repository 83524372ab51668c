package facts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SourceExts are the extensions scanned for backend source code.
var SourceExts = []string{".js", ".mjs", ".cjs", ".ts"}

// skipDirs are directory names never descended into. Hidden directories are
// skipped separately by name prefix.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
}

// ListFiles walks root and returns up to limit files whose extension is in
// exts, in deterministic walk order. Hidden directories and dependency caches
// are excluded. Walk errors are swallowed: an unreadable subtree just
// contributes nothing.
func ListFiles(root string, exts []string, limit int) []string {
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}

	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if limit > 0 && len(files) >= limit {
			return filepath.SkipAll
		}
		if extSet[filepath.Ext(name)] {
			files = append(files, path)
		}
		return nil
	})

	return files
}

// ReadFile returns the file's text and true, or "" and false on any failure.
func ReadFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
