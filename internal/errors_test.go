package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := &ConfigError{Key: "DATABASE_URL"}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("ConfigError.Error() = %q, should name the key", err.Error())
	}

	inner := fmt.Errorf("bad yaml")
	wrapped := &ConfigError{Key: "config file", Err: inner}
	if !errors.Is(wrapped, inner) {
		t.Error("ConfigError should unwrap to the inner error")
	}
}

func TestLoadError(t *testing.T) {
	inner := fmt.Errorf("no such file")
	err := &LoadError{Path: "/tmp/x.json", Op: "open", Err: inner}

	got := err.Error()
	for _, want := range []string{"open", "/tmp/x.json", "no such file"} {
		if !strings.Contains(got, want) {
			t.Errorf("LoadError.Error() = %q, should contain %q", got, want)
		}
	}
	if !errors.Is(err, inner) {
		t.Error("LoadError should unwrap to the inner error")
	}
}

func TestMissingFieldError(t *testing.T) {
	tests := []struct {
		name string
		err  *MissingFieldError
		want []string
	}{
		{
			name: "session level",
			err:  &MissingFieldError{Field: "source", SessionID: "s1", MessageIndex: -1},
			want: []string{"source", "s1"},
		},
		{
			name: "message level",
			err:  &MissingFieldError{Field: "content", SessionID: "s1", MessageIndex: 2},
			want: []string{"content", "s1", "2"},
		},
		{
			name: "missing session id itself",
			err:  &MissingFieldError{Field: "sessionId", MessageIndex: -1},
			want: []string{"sessionId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Error() = %q, should contain %q", got, want)
				}
			}
		})
	}
}

func TestDatabaseError(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := &DatabaseError{Op: "connect", Err: inner}
	if !strings.Contains(err.Error(), "connect") || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("DatabaseError.Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("DatabaseError should unwrap to the inner error")
	}
}
