package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// Ensure ImportLogStore implements the interface.
var _ driven.ImportLogStore = (*ImportLogStore)(nil)

// ImportLogStore is an in-memory implementation of driven.ImportLogStore.
type ImportLogStore struct {
	mu      sync.RWMutex
	records map[string]domain.ImportRecord
}

// NewImportLogStore creates a new in-memory import log.
func NewImportLogStore() *ImportLogStore {
	return &ImportLogStore{
		records: make(map[string]domain.ImportRecord),
	}
}

// Save stores or replaces the record for its fingerprint.
func (s *ImportLogStore) Save(_ context.Context, record domain.ImportRecord) error {
	if record.Fingerprint == "" {
		return fmt.Errorf("%w: empty fingerprint", domain.ErrInvalidInput)
	}
	if record.ImportedAt.IsZero() {
		record.ImportedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Fingerprint] = record
	return nil
}

// Get retrieves the record for a fingerprint.
func (s *ImportLogStore) Get(_ context.Context, fingerprint string) (*domain.ImportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[fingerprint]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// ListRun returns all records written by one run, oldest first.
func (s *ImportLogStore) ListRun(_ context.Context, runID string) ([]domain.ImportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []domain.ImportRecord
	for _, record := range s.records {
		if record.RunID == runID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].ImportedAt.Equal(records[j].ImportedAt) {
			return records[i].ImportedAt.Before(records[j].ImportedAt)
		}
		return records[i].Fingerprint < records[j].Fingerprint
	})
	return records, nil
}

// Delete removes the record for a fingerprint.
func (s *ImportLogStore) Delete(_ context.Context, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, fingerprint)
	return nil
}
