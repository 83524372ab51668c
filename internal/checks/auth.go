package checks

import (
	"github.com/shipcheck/shipcheck/internal/extract"
)

const (
	maxJWTExpirySeconds  = 365 * 24 * 3600 // one year, issue beyond this
	warnJWTExpirySeconds = 7 * 24 * 3600   // seven days, warning beyond this
)

// Auth checks that every sensitive route carries auth middleware in its
// surrounding context, and that the JWT expiry is not excessive.
func Auth(t Target) *Result {
	r := newResult("auth")

	files := t.SourceFiles()
	if len(files) == 0 {
		r.warn(Finding{Kind: KindNoRoutes})
		return r.finalize()
	}

	var all []extract.RouteRecord
	jwtChecked := false

	for _, path := range files {
		ff, ok := t.Store.File(path)
		if !ok {
			continue
		}

		for _, route := range ff.Routes {
			all = append(all, route)
			if !extract.IsSensitivePath(route.Path) {
				continue
			}
			if !extract.HasAuthContext(ff.Content, route.Line) {
				rec := route
				rec.File = t.Rel(route.File)
				r.Unprotected = append(r.Unprotected, rec)
				r.issue(Finding{
					Kind:   KindUnprotectedRoute,
					Method: route.Method,
					Path:   route.Path,
					File:   rec.File,
					Line:   route.Line,
				})
			}
		}

		// first expiry configuration found wins across the project too
		if !jwtChecked {
			if seconds, found := extract.JWTExpiry(ff.Content); found {
				jwtChecked = true
				switch {
				case seconds > maxJWTExpirySeconds:
					r.issue(Finding{Kind: KindLongTokenExpiry, Seconds: seconds})
				case seconds > warnJWTExpirySeconds:
					r.warn(Finding{Kind: KindLongTokenExpiry, Seconds: seconds})
				}
			}
		}
	}

	r.Routes = all
	if len(all) == 0 {
		r.warn(Finding{Kind: KindNoRoutes})
	}

	return r.finalize()
}
