package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"mercator-hq/atlas/pkg/config"
)

// SQLiteStore implements Store using SQLite for persistence.
// It provides a durable validation history suitable for single-instance
// deployments, with WAL mode for concurrent readers.
type SQLiteStore struct {
	db        *sql.DB
	logger    *slog.Logger
	mu        sync.RWMutex
	closeOnce sync.Once

	saveStmt  *sql.Stmt
	pruneStmt *sql.Stmt
}

// NewSQLiteStore creates a new SQLite-backed history store.
// It initializes the schema and prepares the hot-path statements.
func NewSQLiteStore(cfg *config.SQLiteConfig) (*SQLiteStore, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("sqlite history store requires a database path")
	}

	busyTimeout := cfg.BusyTimeout
	if busyTimeout <= 0 {
		busyTimeout = config.DefaultHistorySQLiteBusyTimeout
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.Path, busyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{
		db:     db,
		logger: slog.Default().With("component", "history.sqlite"),
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare history statements: %w", err)
	}

	s.logger.Info("history store initialized", "path", cfg.Path)
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS validation_runs (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		valid INTEGER NOT NULL,
		errors TEXT,
		warnings TEXT,
		resource_count INTEGER NOT NULL DEFAULT 0,
		checked_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_checked_at ON validation_runs(checked_at);
	CREATE INDEX IF NOT EXISTS idx_runs_path ON validation_runs(path);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.saveStmt, err = s.db.Prepare(`
		INSERT INTO validation_runs (id, path, valid, errors, warnings, resource_count, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare save statement: %w", err)
	}

	s.pruneStmt, err = s.db.Prepare(`
		DELETE FROM validation_runs
		WHERE id IN (
			SELECT id FROM validation_runs
			ORDER BY checked_at DESC
			LIMIT -1 OFFSET ?
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare prune statement: %w", err)
	}

	return nil
}

// Save persists one validation run.
func (s *SQLiteStore) Save(ctx context.Context, record *Record) error {
	errorsJSON, err := json.Marshal(record.Errors)
	if err != nil {
		return fmt.Errorf("failed to serialize errors: %w", err)
	}
	warningsJSON, err := json.Marshal(record.Warnings)
	if err != nil {
		return fmt.Errorf("failed to serialize warnings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.saveStmt.ExecContext(ctx,
		record.ID,
		record.Path,
		boolToInt(record.Valid),
		string(errorsJSON),
		string(warningsJSON),
		record.ResourceCount,
		record.CheckedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save validation run: %w", err)
	}

	return nil
}

// Query returns matching records, newest first.
func (s *SQLiteStore) Query(ctx context.Context, query *Query) ([]*Record, error) {
	if query == nil {
		query = &Query{}
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, path, valid, errors, warnings, resource_count, checked_at
		FROM validation_runs
	`)

	var conditions []string
	var args []interface{}

	if query.Path != "" {
		conditions = append(conditions, "path = ?")
		args = append(args, query.Path)
	}
	if query.Since != nil {
		conditions = append(conditions, "checked_at >= ?")
		args = append(args, query.Since.UnixMilli())
	}
	if query.OnlyInvalid {
		conditions = append(conditions, "valid = 0")
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY checked_at DESC")
	if query.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, query.Limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation runs: %w", err)
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read validation runs: %w", err)
	}

	return records, nil
}

// Prune removes the oldest records so that at most keep remain.
func (s *SQLiteStore) Prune(ctx context.Context, keep int64) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.pruneStmt.ExecContext(ctx, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune validation runs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned runs: %w", err)
	}

	if deleted > 0 {
		s.logger.Info("pruned validation history", "deleted", deleted, "keep", keep)
	}

	return deleted, nil
}

// Close releases the prepared statements and the database handle.
func (s *SQLiteStore) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		if s.saveStmt != nil {
			s.saveStmt.Close()
		}
		if s.pruneStmt != nil {
			s.pruneStmt.Close()
		}
		closeErr = s.db.Close()
	})
	return closeErr
}

func scanRecord(rows *sql.Rows) (*Record, error) {
	var record Record
	var valid int
	var errorsJSON, warningsJSON string
	var checkedAt int64

	if err := rows.Scan(
		&record.ID,
		&record.Path,
		&valid,
		&errorsJSON,
		&warningsJSON,
		&record.ResourceCount,
		&checkedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan validation run: %w", err)
	}

	record.Valid = valid != 0
	record.CheckedAt = time.UnixMilli(checkedAt).UTC()

	if err := json.Unmarshal([]byte(errorsJSON), &record.Errors); err != nil {
		return nil, fmt.Errorf("failed to deserialize errors: %w", err)
	}
	if err := json.Unmarshal([]byte(warningsJSON), &record.Warnings); err != nil {
		return nil, fmt.Errorf("failed to deserialize warnings: %w", err)
	}

	return &record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
