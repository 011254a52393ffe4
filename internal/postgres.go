package internal

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const pgSchemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	id SERIAL PRIMARY KEY,
	session_id TEXT UNIQUE,
	source TEXT,
	memory_type TEXT,
	email TEXT
);
CREATE TABLE IF NOT EXISTS messages (
	id SERIAL PRIMARY KEY,
	session_id TEXT REFERENCES sessions(session_id),
	content TEXT,
	role TEXT,
	time TIMESTAMP,
	used_tools JSONB,
	file_annotations JSONB
);`

const pgInsertSessionSQL = `
INSERT INTO sessions (session_id, source, memory_type, email)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_id) DO NOTHING`

// PostgresStore imports batches into PostgreSQL over a single connection.
type PostgresStore struct {
	conn *pgx.Conn
}

// OpenPostgresStore connects to PostgreSQL and verifies the connection.
func OpenPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, &DatabaseError{Op: "connect", Err: err}
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, &DatabaseError{Op: "connect", Err: err}
	}
	return &PostgresStore{conn: conn}, nil
}

// Import ensures the schema and bulk-inserts both row sets in one
// transaction. Sessions already present are skipped; messages are inserted
// unconditionally, so re-running the same file duplicates message rows.
func (s *PostgresStore) Import(ctx context.Context, sessions []SessionRow, messages []MessageRow) (*ImportResult, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, &DatabaseError{Op: "begin", Err: err}
	}
	// No-op once committed.
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, pgSchemaSQL); err != nil {
		return nil, &DatabaseError{Op: "schema", Err: err}
	}

	result := &ImportResult{}

	batch := &pgx.Batch{}
	for _, row := range sessions {
		batch.Queue(pgInsertSessionSQL, row.SessionID, row.Source, row.MemoryType, row.Email)
	}
	results := tx.SendBatch(ctx, batch)
	for range sessions {
		ct, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return nil, &DatabaseError{Op: "insert sessions", Err: err}
		}
		if ct.RowsAffected() > 0 {
			result.SessionsInserted++
		} else {
			result.SessionsSkipped++
		}
	}
	if err := results.Close(); err != nil {
		return nil, &DatabaseError{Op: "insert sessions", Err: err}
	}

	if len(messages) > 0 {
		rows := make([][]any, len(messages))
		for i, m := range messages {
			rows[i] = []any{m.SessionID, m.Content, m.Role, m.Time, []byte(m.UsedTools), []byte(m.FileAnnotations)}
		}
		copied, err := tx.CopyFrom(ctx,
			pgx.Identifier{"messages"},
			[]string{"session_id", "content", "role", "time", "used_tools", "file_annotations"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return nil, &DatabaseError{Op: "insert messages", Err: err}
		}
		result.MessagesInserted = int(copied)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &DatabaseError{Op: "commit", Err: err}
	}

	LogDebug("postgres import committed",
		"sessions_inserted", result.SessionsInserted,
		"sessions_skipped", result.SessionsSkipped,
		"messages_inserted", result.MessagesInserted)
	return result, nil
}

// Close releases the connection.
func (s *PostgresStore) Close() error {
	return s.conn.Close(context.Background())
}
