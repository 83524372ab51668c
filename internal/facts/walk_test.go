package facts

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.js"), "")
	writeFile(t, filepath.Join(dir, "src", "routes.ts"), "")
	writeFile(t, filepath.Join(dir, "README.md"), "")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "index.js"), "")
	writeFile(t, filepath.Join(dir, ".git", "hook.js"), "")

	files := ListFiles(dir, SourceExts, 0)

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base != "app.js" && base != "routes.ts" {
			t.Errorf("unexpected file in listing: %s", f)
		}
	}
}

func TestListFilesCap(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.js", "b.js", "c.js", "d.js"} {
		writeFile(t, filepath.Join(dir, name), "")
	}

	files := ListFiles(dir, SourceExts, 2)
	if len(files) != 2 {
		t.Errorf("cap not applied: got %d files", len(files))
	}
}

func TestListFilesMissingRoot(t *testing.T) {
	files := ListFiles(filepath.Join(t.TempDir(), "nope"), SourceExts, 0)
	if len(files) != 0 {
		t.Errorf("missing root should yield no files, got %v", files)
	}
}

func TestLoadPackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"),
		`{"name":"api","scripts":{"start":"node app.js"},"dependencies":{"express":"^4.18.0"},"devDependencies":{"jest":"^29.0.0"}}`)

	pkg, ok := LoadPackageJSON(dir)
	if !ok {
		t.Fatal("expected package.json to load")
	}
	if pkg.Name != "api" {
		t.Errorf("Name = %q, want %q", pkg.Name, "api")
	}
	if !pkg.HasDependency("express") || !pkg.HasDependency("jest") {
		t.Error("HasDependency should cover both dependency sets")
	}
	if len(pkg.AllDependencies()) != 2 {
		t.Errorf("AllDependencies() = %v", pkg.AllDependencies())
	}
}

func TestLoadPackageJSONMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), "{not json")

	if _, ok := LoadPackageJSON(dir); ok {
		t.Error("malformed package.json should not load")
	}
	if !PackageJSONExists(dir) {
		t.Error("PackageJSONExists should still see the file")
	}
}

func TestStoreCachesRoutes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.js")
	writeFile(t, path, "app.get('/health', h)\n")

	store := NewStore()

	first, ok := store.File(path)
	if !ok {
		t.Fatal("expected file facts")
	}
	if len(first.Routes) != 1 || first.Routes[0].Path != "/health" {
		t.Fatalf("unexpected routes: %+v", first.Routes)
	}

	second, ok := store.File(path)
	if !ok {
		t.Fatal("expected cached facts")
	}
	if len(second.Routes) != 1 || second.Content != first.Content {
		t.Error("cached read should match first read")
	}

	if _, ok := store.File(filepath.Join(dir, "gone.js")); ok {
		t.Error("missing file should not produce facts")
	}
}
