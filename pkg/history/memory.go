package history

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore implements Store with in-memory storage.
// All data is lost when the process exits; it exists for tests and for
// watch runs where persistence is not wanted.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*Record
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make([]*Record, 0),
	}
}

// Save persists one validation run.
func (s *MemoryStore) Save(ctx context.Context, record *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

// Query returns matching records, newest first.
func (s *MemoryStore) Query(ctx context.Context, query *Query) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == nil {
		query = &Query{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*Record, 0)
	for _, record := range s.records {
		if query.Path != "" && record.Path != query.Path {
			continue
		}
		if query.Since != nil && record.CheckedAt.Before(*query.Since) {
			continue
		}
		if query.OnlyInvalid && record.Valid {
			continue
		}
		copied := *record
		matched = append(matched, &copied)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CheckedAt.After(matched[j].CheckedAt)
	})

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	return matched, nil
}

// Prune removes the oldest records so that at most keep remain.
func (s *MemoryStore) Prune(ctx context.Context, keep int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if keep <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	excess := int64(len(s.records)) - keep
	if excess <= 0 {
		return 0, nil
	}

	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].CheckedAt.Before(s.records[j].CheckedAt)
	})
	s.records = s.records[excess:]

	return excess, nil
}

// Close releases resources; for the memory store it only drops the records.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
