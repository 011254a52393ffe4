package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExport(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	if err := os.WriteFile(valid, []byte(`[{"sessionId":"s1","source":"web","messages":[]}]`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	malformed := filepath.Join(dir, "malformed.json")
	if err := os.WriteFile(malformed, []byte(`{"not":"an array"`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	notArray := filepath.Join(dir, "object.json")
	if err := os.WriteFile(notArray, []byte(`{"sessionId":"s1"}`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	nullDoc := filepath.Join(dir, "null.json")
	if err := os.WriteFile(nullDoc, []byte(`null`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
		wantOp  string
	}{
		{name: "valid document", path: valid},
		{name: "missing file", path: filepath.Join(dir, "nope.json"), wantErr: true, wantOp: "open"},
		{name: "malformed JSON", path: malformed, wantErr: true, wantOp: "parse"},
		{name: "top level not an array", path: notArray, wantErr: true, wantOp: "parse"},
		{name: "top level null", path: nullDoc, wantErr: true, wantOp: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := LoadExport(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadExport() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var loadErr *LoadError
				if !errors.As(err, &loadErr) {
					t.Fatalf("LoadExport() error type = %T, want *LoadError", err)
				}
				if loadErr.Op != tt.wantOp {
					t.Errorf("LoadError.Op = %q, want %q", loadErr.Op, tt.wantOp)
				}
				return
			}
			if len(records) != 1 {
				t.Errorf("LoadExport() returned %d records, want 1", len(records))
			}
		})
	}
}

func TestLoadExportPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ordered.json")
	doc := `[
		{"sessionId":"a","source":"web","messages":[]},
		{"sessionId":"b","source":"web","messages":[]},
		{"sessionId":"c","source":"web","messages":[]}
	]`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := LoadExport(path)
	if err != nil {
		t.Fatalf("LoadExport() error = %v", err)
	}

	want := []string{"a", "b", "c"}
	for i, rec := range records {
		if rec.SessionID == nil || *rec.SessionID != want[i] {
			t.Errorf("record %d sessionId = %v, want %q", i, rec.SessionID, want[i])
		}
	}
}
