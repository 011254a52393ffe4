package internal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// LoadExport reads an export file and decodes the top-level array of
// session records. It has no side effects beyond the read.
func LoadExport(path string) ([]SessionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		op := "read"
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			op = "open"
		}
		return nil, &LoadError{Path: path, Op: op, Err: err}
	}

	var records []SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: path, Op: "parse", Err: err}
	}
	// A bare null leaves the slice nil without an unmarshal error.
	if records == nil {
		return nil, &LoadError{Path: path, Op: "parse", Err: errors.New("document is not a JSON array")}
	}

	LogDebug("loaded export file", "path", path, "sessions", len(records))
	return records, nil
}
