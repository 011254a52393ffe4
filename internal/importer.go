package internal

import "context"

// RunImport executes the whole pipeline for one export file: load,
// transform, persist. Load and transform failures happen before any
// database resource is acquired; the store is always closed once opened.
func RunImport(ctx context.Context, path, dsn string) (*ImportSummary, error) {
	records, err := LoadExport(path)
	if err != nil {
		return nil, err
	}

	sessions, messages, err := Transform(records)
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			LogWarn("failed to close store", "error", err)
		}
	}()

	result, err := store.Import(ctx, sessions, messages)
	if err != nil {
		LogError("import failed, nothing was written", "error", err)
		return nil, err
	}

	return &ImportSummary{
		SessionsRead: len(sessions),
		MessagesRead: len(messages),
		Result:       *result,
	}, nil
}
