package internal

import (
	"bytes"
	"fmt"
	"time"
)

// timeLayouts are the accepted message timestamp formats. Export files from
// the web frontend carry zone-less ISO timestamps; newer ones use RFC3339.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

const emptyJSONArray = "[]"

// Transform flattens the parsed session records into table rows.
// Output order follows document order; nothing is sorted, grouped, or
// deduplicated. Required fields missing from the document fail the whole
// transform with a MissingFieldError.
func Transform(records []SessionRecord) ([]SessionRow, []MessageRow, error) {
	sessions := make([]SessionRow, 0, len(records))
	var messages []MessageRow

	for _, rec := range records {
		if rec.SessionID == nil {
			return nil, nil, &MissingFieldError{Field: "sessionId", MessageIndex: -1}
		}
		if rec.Source == nil {
			return nil, nil, &MissingFieldError{Field: "source", SessionID: *rec.SessionID, MessageIndex: -1}
		}
		if rec.Messages == nil {
			return nil, nil, &MissingFieldError{Field: "messages", SessionID: *rec.SessionID, MessageIndex: -1}
		}

		row := SessionRow{
			SessionID:  *rec.SessionID,
			Source:     *rec.Source,
			MemoryType: rec.MemoryType,
		}
		if rec.Email != nil {
			row.Email = *rec.Email
		}
		sessions = append(sessions, row)

		for i, msg := range rec.Messages {
			if msg.Content == nil {
				return nil, nil, &MissingFieldError{Field: "content", SessionID: row.SessionID, MessageIndex: i}
			}
			if msg.Role == nil {
				return nil, nil, &MissingFieldError{Field: "role", SessionID: row.SessionID, MessageIndex: i}
			}
			if msg.Time == nil {
				return nil, nil, &MissingFieldError{Field: "time", SessionID: row.SessionID, MessageIndex: i}
			}

			ts, err := parseMessageTime(*msg.Time)
			if err != nil {
				return nil, nil, fmt.Errorf("message %d of session %s: %w", i, row.SessionID, err)
			}

			usedTools, err := jsonArrayOrDefault("usedTools", msg.UsedTools)
			if err != nil {
				return nil, nil, fmt.Errorf("message %d of session %s: %w", i, row.SessionID, err)
			}
			fileAnnotations, err := jsonArrayOrDefault("fileAnnotations", msg.FileAnnotations)
			if err != nil {
				return nil, nil, fmt.Errorf("message %d of session %s: %w", i, row.SessionID, err)
			}

			messages = append(messages, MessageRow{
				SessionID:       row.SessionID,
				Content:         *msg.Content,
				Role:            *msg.Role,
				Time:            ts,
				UsedTools:       usedTools,
				FileAnnotations: fileAnnotations,
			})
		}
	}

	LogDebug("transformed export", "sessions", len(sessions), "messages", len(messages))
	return sessions, messages, nil
}

func parseMessageTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q", value)
}

// jsonArrayOrDefault returns the raw value destined for a JSON array column,
// defaulting an absent or null value to "[]". Non-array values are rejected
// rather than smuggled into the column.
func jsonArrayOrDefault(field string, raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return emptyJSONArray, nil
	}
	if trimmed[0] != '[' {
		return "", fmt.Errorf("%s is not a JSON array: %s", field, trimmed)
	}
	return string(trimmed), nil
}
