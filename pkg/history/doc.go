// Package history persists template validation runs.
//
// Each lint run produces a Record (file, validity, rendered messages,
// resource count, timestamp). Stores keep them newest-first and support
// pruning to a maximum record count.
//
// Two backends exist:
//
// MemoryStore: process-local, lost on exit; used in tests and ephemeral
// watch runs.
//
// SQLiteStore: durable single-file database with WAL mode; the default
// backend for the history and watch commands.
//
//	store, err := history.NewSQLiteStore(&cfg.History.SQLite)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	record := history.NewRecord(path, result, inspect.CountResources(doc))
//	if err := store.Save(ctx, record); err != nil {
//	    return err
//	}
package history
