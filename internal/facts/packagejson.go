package facts

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PackageJSON is the subset of package.json the checks care about.
type PackageJSON struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// LoadPackageJSON reads <root>/package.json. The second return is false when
// the file is missing or malformed; callers decide whether that is an issue.
func LoadPackageJSON(root string) (*PackageJSON, bool) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, false
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, false
	}
	return &pkg, true
}

// PackageJSONExists reports whether <root>/package.json is present at all,
// distinguishing "missing" from "malformed".
func PackageJSONExists(root string) bool {
	_, err := os.Stat(filepath.Join(root, "package.json"))
	return err == nil
}

// AllDependencies merges dependencies and devDependencies.
func (p *PackageJSON) AllDependencies() map[string]string {
	all := make(map[string]string, len(p.Dependencies)+len(p.DevDependencies))
	for name, v := range p.Dependencies {
		all[name] = v
	}
	for name, v := range p.DevDependencies {
		all[name] = v
	}
	return all
}

// HasDependency reports whether name appears in dependencies or
// devDependencies.
func (p *PackageJSON) HasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}
