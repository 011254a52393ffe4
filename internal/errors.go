package internal

import "fmt"

// ConfigError represents a missing or invalid configuration value
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error: %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("config error: %s is not set", e.Key)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadError represents errors reading or parsing the export file
type LoadError struct {
	Path string
	Op   string // "open", "read", "parse"
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingFieldError represents a required field absent from the export.
// SessionID is empty while the session identifier itself is the missing
// field; MessageIndex is -1 for session-level fields.
type MissingFieldError struct {
	Field        string
	SessionID    string
	MessageIndex int
}

func (e *MissingFieldError) Error() string {
	switch {
	case e.MessageIndex >= 0 && e.SessionID != "":
		return fmt.Sprintf("missing field %q in message %d of session %s", e.Field, e.MessageIndex, e.SessionID)
	case e.SessionID != "":
		return fmt.Sprintf("missing field %q in session %s", e.Field, e.SessionID)
	default:
		return fmt.Sprintf("missing field %q", e.Field)
	}
}

// DatabaseError represents errors from the persistence layer
type DatabaseError struct {
	Op  string // "connect", "begin", "schema", "insert sessions", "insert messages", "commit"
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error: %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
