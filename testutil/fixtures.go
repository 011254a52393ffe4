package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleExport is a well-formed two-session export document covering the
// optional-field defaults: the first session has every field, the second
// omits memoryType and email and carries a tool-using message.
const SampleExport = `[
  {
    "sessionId": "s1",
    "source": "web",
    "memoryType": "episodic",
    "email": "user@example.com",
    "messages": [
      {"content": "hi", "role": "user", "time": "2024-01-01T00:00:00"},
      {"content": "hello!", "role": "assistant", "time": "2024-01-01T00:00:05"}
    ]
  },
  {
    "sessionId": "s2",
    "source": "mobile",
    "messages": [
      {
        "content": "what is the weather",
        "role": "user",
        "time": "2024-02-01T12:30:00",
        "usedTools": [{"name": "weather", "input": {"city": "Nairobi"}}],
        "fileAnnotations": [{"file": "notes.txt", "line": 3}]
      }
    ]
  }
]`

// MinimalExport matches the worked example from the tool's documentation:
// one session, one message, no optional fields.
const MinimalExport = `[{"sessionId":"s1","source":"web","messages":[{"content":"hi","role":"user","time":"2024-01-01T00:00:00"}]}]`

// MissingContentExport has a message without content and must fail the
// transform.
const MissingContentExport = `[
  {
    "sessionId": "s1",
    "source": "web",
    "messages": [
      {"role": "user", "time": "2024-01-01T00:00:00"}
    ]
  }
]`

// DuplicateSessionExport repeats one session identifier with different
// messages; only one session row should land.
const DuplicateSessionExport = `[
  {
    "sessionId": "dup",
    "source": "web",
    "messages": [{"content": "first", "role": "user", "time": "2024-03-01T09:00:00"}]
  },
  {
    "sessionId": "dup",
    "source": "web",
    "messages": [{"content": "second", "role": "user", "time": "2024-03-01T09:01:00"}]
  }
]`

// WriteExportFile writes an export document to a temp file and returns its path
func WriteExportFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write export file: %v", err)
	}
	return path
}
