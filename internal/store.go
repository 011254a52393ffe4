package internal

import (
	"context"
	"strings"
)

// Store persists one import batch. Implementations run the whole batch in a
// single transaction: schema ensure, session insert (conflict-ignored on the
// session identifier), message insert (no conflict handling). Any failure
// rolls the transaction back so no partial writes persist.
type Store interface {
	Import(ctx context.Context, sessions []SessionRow, messages []MessageRow) (*ImportResult, error)
	Close() error
}

// OpenStore opens a store for the given connection target. postgres:// and
// postgresql:// URLs get the PostgreSQL store; everything else is treated as
// a SQLite database path (an optional sqlite:// prefix is stripped).
func OpenStore(ctx context.Context, dsn string) (Store, error) {
	switch {
	case dsn == "":
		return nil, &ConfigError{Key: "DATABASE_URL"}
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgresStore(ctx, dsn)
	default:
		return OpenSQLiteStore(strings.TrimPrefix(dsn, "sqlite://"))
	}
}
