package checks

import (
	"strings"

	"github.com/shipcheck/shipcheck/internal/extract"
)

// healthPaths is the fixed vocabulary satisfying the health-endpoint check.
var healthPaths = map[string]bool{
	"/health":     true,
	"/healthz":    true,
	"/ping":       true,
	"/status":     true,
	"/api/health": true,
}

// API checks route shape: a health endpoint must exist, and mutating routes
// should have sibling GETs.
func API(t Target) *Result {
	r := newResult("api")

	var all []extract.RouteRecord
	for _, path := range t.SourceFiles() {
		ff, ok := t.Store.File(path)
		if !ok {
			continue
		}
		all = append(all, ff.Routes...)
	}
	r.Routes = all

	if len(all) == 0 {
		r.warn(Finding{Kind: KindNoRoutes})
	}

	if !hasHealthEndpoint(all) {
		r.issue(Finding{Kind: KindMissingHealthEndpoint})
	}

	checkRouteSymmetry(r, all)

	return r.finalize()
}

// hasHealthEndpoint matches on path alone; a health route registered under
// any method satisfies the check.
func hasHealthEndpoint(routes []extract.RouteRecord) bool {
	for _, route := range routes {
		path := strings.TrimSuffix(route.Path, "/")
		if path == "" {
			path = "/"
		}
		if healthPaths[path] {
			return true
		}
	}
	return false
}

// checkRouteSymmetry warns on POST paths whose collection has no GET, and on
// PUT/PATCH paths with no GET of their own. Each path is flagged once.
func checkRouteSymmetry(r *Result, routes []extract.RouteRecord) {
	methodsByPath := make(map[string]map[string]bool)
	for _, route := range routes {
		if methodsByPath[route.Path] == nil {
			methodsByPath[route.Path] = make(map[string]bool)
		}
		methodsByPath[route.Path][route.Method] = true
	}

	flagged := make(map[string]bool)
	for _, route := range routes {
		if flagged[route.Method+" "+route.Path] {
			continue
		}
		flagged[route.Method+" "+route.Path] = true

		switch route.Method {
		case "POST":
			parent := collectionPath(route.Path)
			if !methodsByPath[parent]["GET"] && !methodsByPath[route.Path]["GET"] {
				r.warn(Finding{Kind: KindMissingCollectionGet, Path: route.Path, Detail: parent})
			}
		case "PUT", "PATCH":
			if !methodsByPath[route.Path]["GET"] {
				r.warn(Finding{Kind: KindMissingItemGet, Method: route.Method, Path: route.Path})
			}
		}
	}
}

// collectionPath strips the last path segment. Single-segment paths
// collapse to "/".
func collectionPath(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx <= 0 {
		return "/"
	}
	return trimmed[:idx]
}
