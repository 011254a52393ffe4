package cmd

import (
	"bytes"
	"testing"

	"github.com/gtahidi/chat-import/testutil"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	// Flag values live on package vars and survive between Execute calls.
	t.Cleanup(func() {
		dsn = ""
		envFile = ""
		validateDump = false
		validateFormat = "json"
	})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	return rootCmd.Execute()
}

func TestImportCommand(t *testing.T) {
	exportPath := testutil.WriteExportFile(t, testutil.SampleExport)
	dbPath := testutil.TempDBPath(t)

	if err := execute(t, "import", exportPath, "--dsn", dbPath); err != nil {
		t.Fatalf("import command error = %v", err)
	}

	db := testutil.OpenDB(t, dbPath)
	if got := testutil.CountRows(t, db, "sessions"); got != 2 {
		t.Errorf("sessions rows = %d, want 2", got)
	}
	if got := testutil.CountRows(t, db, "messages"); got != 3 {
		t.Errorf("messages rows = %d, want 3", got)
	}
}

func TestImportCommandErrors(t *testing.T) {
	exportPath := testutil.WriteExportFile(t, testutil.SampleExport)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing file argument",
			args: []string{"import"},
		},
		{
			name: "nonexistent file",
			args: []string{"import", "/nonexistent/export.json", "--dsn", testutil.TempDBPath(t)},
		},
		{
			name: "no connection target",
			args: []string{"import", exportPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			if err := execute(t, tt.args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestImportCommandMissingFieldLeavesDatabaseUntouched(t *testing.T) {
	dbPath := testutil.TempDBPath(t)

	good := testutil.WriteExportFile(t, testutil.SampleExport)
	if err := execute(t, "import", good, "--dsn", dbPath); err != nil {
		t.Fatalf("seed import error = %v", err)
	}

	bad := testutil.WriteExportFile(t, testutil.MissingContentExport)
	if err := execute(t, "import", bad, "--dsn", dbPath); err == nil {
		t.Fatal("import of document with missing content should fail")
	}

	db := testutil.OpenDB(t, dbPath)
	if got := testutil.CountRows(t, db, "sessions"); got != 2 {
		t.Errorf("sessions rows = %d, want 2", got)
	}
	if got := testutil.CountRows(t, db, "messages"); got != 3 {
		t.Errorf("messages rows = %d, want 3", got)
	}
}
