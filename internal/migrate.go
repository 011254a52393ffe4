package internal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx v5 driver
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations for the given connection
// target. Migrations are embedded at compile time; golang-migrate tracks
// applied versions in its schema_migrations table. The import path does not
// depend on this — Store.Import ensures tables itself — but migrating up
// front keeps the schema visible and versioned.
func Migrate(dsn string) error {
	if dsn == "" {
		return &ConfigError{Key: "DATABASE_URL"}
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return migratePostgres(dsn)
	}
	return migrateSQLite(strings.TrimPrefix(dsn, "sqlite://"))
}

func migratePostgres(dsn string) error {
	source, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	// golang-migrate's pgx v5 driver registers under the pgx5 scheme.
	u, err := url.Parse(dsn)
	if err != nil {
		return &ConfigError{Key: "DATABASE_URL", Err: err}
	}
	u.Scheme = "pgx5"

	m, err := migrate.NewWithSourceInstance("iofs", source, u.String())
	if err != nil {
		return &DatabaseError{Op: "migrate", Err: err}
	}
	defer closeMigrate(m)

	return runUp(m)
}

func migrateSQLite(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &DatabaseError{Op: "connect", Err: err}
	}
	defer db.Close()

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return &DatabaseError{Op: "migrate", Err: err}
	}

	source, err := iofs.New(migrationsFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return &DatabaseError{Op: "migrate", Err: err}
	}
	// Don't close m here: the sqlite driver shares db, which we close above.

	return runUp(m)
}

func runUp(m *migrate.Migrate) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			LogDebug("no new migrations to apply")
			return nil
		}
		return &DatabaseError{Op: "migrate", Err: err}
	}

	version, dirty, err := m.Version()
	if err != nil {
		LogWarn("migrations applied but version check failed", "error", err)
		return nil
	}
	LogInfo("migrations completed", "version", version, "dirty", dirty)
	return nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		LogWarn("failed to close migration source", "error", srcErr)
	}
	if dbErr != nil {
		LogWarn("failed to close migration database connection", "error", dbErr)
	}
}
