package internal

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSessionsSchemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT UNIQUE,
	source TEXT,
	memory_type TEXT,
	email TEXT
)`

const sqliteMessagesSchemaSQL = `
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT REFERENCES sessions(session_id),
	content TEXT,
	role TEXT,
	time TEXT,
	used_tools TEXT,
	file_annotations TEXT
)`

const sqliteInsertSessionSQL = `
INSERT OR IGNORE INTO sessions (session_id, source, memory_type, email)
VALUES (?, ?, ?, ?)`

const sqliteInsertMessageSQL = `
INSERT INTO messages (session_id, content, role, time, used_tools, file_annotations)
VALUES (?, ?, ?, ?, ?, ?)`

// SQLiteStore imports batches into a SQLite database file. Timestamps are
// stored as RFC3339 text and the tool/annotation columns as JSON text.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) a SQLite database at path.
// ":memory:" gives an in-memory database, which tests rely on.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &DatabaseError{Op: "connect", Err: err}
	}
	// A single connection keeps :memory: databases stable across statements.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &DatabaseError{Op: "connect", Err: err}
	}
	return &SQLiteStore{db: db}, nil
}

// DB exposes the underlying handle for tests that inspect row counts.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Import mirrors the PostgreSQL store semantics on SQLite: one transaction
// covering schema ensure, conflict-ignored session inserts, and plain
// message inserts.
func (s *SQLiteStore) Import(ctx context.Context, sessions []SessionRow, messages []MessageRow) (*ImportResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &DatabaseError{Op: "begin", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{sqliteSessionsSchemaSQL, sqliteMessagesSchemaSQL} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return nil, &DatabaseError{Op: "schema", Err: err}
		}
	}

	result := &ImportResult{}

	insertSession, err := tx.PrepareContext(ctx, sqliteInsertSessionSQL)
	if err != nil {
		return nil, &DatabaseError{Op: "insert sessions", Err: err}
	}
	defer insertSession.Close()
	for _, row := range sessions {
		res, err := insertSession.ExecContext(ctx, row.SessionID, row.Source, row.MemoryType, row.Email)
		if err != nil {
			return nil, &DatabaseError{Op: "insert sessions", Err: err}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, &DatabaseError{Op: "insert sessions", Err: err}
		}
		if affected > 0 {
			result.SessionsInserted++
		} else {
			result.SessionsSkipped++
		}
	}

	insertMessage, err := tx.PrepareContext(ctx, sqliteInsertMessageSQL)
	if err != nil {
		return nil, &DatabaseError{Op: "insert messages", Err: err}
	}
	defer insertMessage.Close()
	for _, m := range messages {
		if _, err := insertMessage.ExecContext(ctx,
			m.SessionID, m.Content, m.Role, m.Time.Format(time.RFC3339Nano),
			m.UsedTools, m.FileAnnotations,
		); err != nil {
			return nil, &DatabaseError{Op: "insert messages", Err: err}
		}
		result.MessagesInserted++
	}

	if err := tx.Commit(); err != nil {
		return nil, &DatabaseError{Op: "commit", Err: err}
	}

	LogDebug("sqlite import committed",
		"sessions_inserted", result.SessionsInserted,
		"sessions_skipped", result.SessionsSkipped,
		"messages_inserted", result.MessagesInserted)
	return result, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
