package checks

import (
	"regexp"
	"strings"

	"github.com/shipcheck/shipcheck/internal/facts"
)

// dbPackages maps npm package names to the database type they indicate,
// in detection order.
var dbPackages = []struct {
	pkg    string
	dbType string
}{
	{"mongoose", "mongodb"},
	{"mongodb", "mongodb"},
	{"pg", "postgresql"},
	{"mysql2", "mysql"},
	{"mysql", "mysql"},
	{"sqlite3", "sqlite"},
	{"better-sqlite3", "sqlite"},
	{"redis", "redis"},
	{"ioredis", "redis"},
	{"sequelize", "sql"},
	{"typeorm", "sql"},
	{"@prisma/client", "sql"},
	{"prisma", "sql"},
	{"knex", "sql"},
}

// dbEnvHints maps env key fragments to a database type.
var dbEnvHints = []struct {
	fragment string
	dbType   string
}{
	{"MONGO", "mongodb"},
	{"POSTGRES", "postgresql"},
	{"MYSQL", "mysql"},
	{"REDIS", "redis"},
	{"DATABASE_URL", "sql"},
	{"DB_", "sql"},
}

var (
	reDBConnect      = regexp.MustCompile(`(?i)\b(connect|createConnection|createPool|createClient)\s*\(`)
	reConnErrHandler = regexp.MustCompile(`(?i)\.on\s*\(\s*['"]error['"]|\.catch\s*\(|catch\s*\(|catch\s*\{`)
	rePooling        = regexp.MustCompile(`(?i)\b(pool|createPool|poolSize|connectionLimit|max_connections)\b`)
)

var migrationDirs = []string{"migrations", "db/migrations", "prisma/migrations", "database/migrations"}

// Database detects whether the project talks to a database and, if so,
// checks connection handling, pooling, and migrations. With no database
// indicators the module self-reports skipped and passes.
func Database(t Target) *Result {
	r := newResult("database")

	dbType := detectDatabase(t)
	if dbType == "" {
		r.Skipped = true
		return r.finalize()
	}
	r.DBType = dbType

	connectSeen := false
	handledSeen := false
	poolingSeen := false

	for _, path := range t.SourceFiles() {
		ff, ok := t.Store.File(path)
		if !ok {
			continue
		}
		if reDBConnect.MatchString(ff.Content) {
			connectSeen = true
			if reConnErrHandler.MatchString(ff.Content) {
				handledSeen = true
			}
		}
		if rePooling.MatchString(ff.Content) {
			poolingSeen = true
		}
	}

	if connectSeen && !handledSeen {
		r.issue(Finding{Kind: KindNoConnectionErrorHandling, Detail: dbType})
	}
	if !poolingSeen {
		r.warn(Finding{Kind: KindNoConnectionPooling})
	}
	if !hasMigrations(t) {
		r.warn(Finding{Kind: KindNoMigrations})
	}

	return r.finalize()
}

// detectDatabase scans .env keys and package.json dependencies for database
// indicators. Packages win over env hints for typing.
func detectDatabase(t Target) string {
	if pkg, ok := facts.LoadPackageJSON(t.Root); ok {
		for _, candidate := range dbPackages {
			if pkg.HasDependency(candidate.pkg) {
				return candidate.dbType
			}
		}
	}

	env := facts.LoadEnv(t.Join(".env"))
	for _, key := range env.Keys() {
		upper := strings.ToUpper(key)
		for _, hint := range dbEnvHints {
			if strings.Contains(upper, hint.fragment) {
				return hint.dbType
			}
		}
	}

	return ""
}

func hasMigrations(t Target) bool {
	for _, dir := range migrationDirs {
		if facts.DirExists(t.Join(dir)) {
			return true
		}
	}
	return false
}
