package internal

import (
	"encoding/json"
	"time"
)

// SessionRecord is one session object from the export file.
// Pointer fields distinguish "absent" from "empty" for required-field checks
// and for the memoryType NULL default.
type SessionRecord struct {
	SessionID  *string         `json:"sessionId"`
	Source     *string         `json:"source"`
	MemoryType *string         `json:"memoryType,omitempty"`
	Email      *string         `json:"email,omitempty"`
	// Messages stays nil when the key is absent; an empty array decodes
	// to a non-nil empty slice.
	Messages []MessageRecord `json:"messages"`
}

// MessageRecord is one message object nested under a session.
type MessageRecord struct {
	Content         *string         `json:"content"`
	Role            *string         `json:"role"`
	Time            *string         `json:"time"`
	UsedTools       json.RawMessage `json:"usedTools,omitempty"`
	FileAnnotations json.RawMessage `json:"fileAnnotations,omitempty"`
}

// SessionRow is one row destined for the sessions table.
// MemoryType stays a pointer so an absent memoryType lands as NULL.
type SessionRow struct {
	SessionID  string  `json:"sessionId" yaml:"sessionId"`
	Source     string  `json:"source" yaml:"source"`
	MemoryType *string `json:"memoryType" yaml:"memoryType"`
	Email      string  `json:"email" yaml:"email"`
}

// MessageRow is one row destined for the messages table.
// UsedTools and FileAnnotations hold serialized JSON arrays; a message
// without them carries "[]".
type MessageRow struct {
	SessionID       string    `json:"sessionId" yaml:"sessionId"`
	Content         string    `json:"content" yaml:"content"`
	Role            string    `json:"role" yaml:"role"`
	Time            time.Time `json:"time" yaml:"time"`
	UsedTools       string    `json:"usedTools" yaml:"usedTools"`
	FileAnnotations string    `json:"fileAnnotations" yaml:"fileAnnotations"`
}

// ImportResult reports what one Store.Import call wrote.
type ImportResult struct {
	SessionsInserted int
	SessionsSkipped  int
	MessagesInserted int
}

// ImportSummary is the end-to-end result of one import run.
type ImportSummary struct {
	SessionsRead int
	MessagesRead int
	Result       ImportResult
}
