package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mercator-hq/atlas/pkg/template/validator"
)

// Record is one persisted validation run for a single template file.
// Error and warning messages are stored rendered; programmatic consumers
// that need kinds should re-validate rather than parse history.
type Record struct {
	// ID is a unique identifier for the run.
	ID string `json:"id"`

	// Path is the template file that was validated.
	Path string `json:"path"`

	// Valid reports whether the run produced zero errors.
	Valid bool `json:"valid"`

	// Errors are the rendered error messages, in report order.
	Errors []string `json:"errors,omitempty"`

	// Warnings are the rendered warning messages, in report order.
	Warnings []string `json:"warnings,omitempty"`

	// ResourceCount is the number of resources in the template at the
	// time of the run (0 for fatal loader failures).
	ResourceCount int `json:"resource_count"`

	// CheckedAt is when the run happened.
	CheckedAt time.Time `json:"checked_at"`
}

// NewRecord builds a Record from a validation result.
func NewRecord(path string, result *validator.Result, resourceCount int) *Record {
	return &Record{
		ID:            uuid.New().String(),
		Path:          path,
		Valid:         result.Valid(),
		Errors:        result.ErrorMessages(),
		Warnings:      result.WarningMessages(),
		ResourceCount: resourceCount,
		CheckedAt:     time.Now().UTC(),
	}
}

// NewFatalRecord builds a Record for a run that failed before validation
// (unreadable or unparseable input).
func NewFatalRecord(path string, err error) *Record {
	return &Record{
		ID:        uuid.New().String(),
		Path:      path,
		Valid:     false,
		Errors:    []string{err.Error()},
		CheckedAt: time.Now().UTC(),
	}
}

// Query selects records from a store. Zero values mean "no constraint".
type Query struct {
	// Path restricts results to runs of a single template file.
	Path string

	// Since restricts results to runs at or after the given time.
	Since *time.Time

	// OnlyInvalid restricts results to runs that reported errors.
	OnlyInvalid bool

	// Limit caps the number of returned records; 0 means no cap.
	Limit int
}

// Store persists validation runs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists one validation run.
	Save(ctx context.Context, record *Record) error

	// Query returns matching records, newest first.
	Query(ctx context.Context, query *Query) ([]*Record, error)

	// Prune removes the oldest records so that at most keep remain.
	// It returns the number of records deleted. keep <= 0 is a no-op.
	Prune(ctx context.Context, keep int64) (int64, error)

	// Close releases any resources held by the store.
	// The store must not be used after Close.
	Close() error
}
