package driven

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// ImportLogStore remembers which appointment was created for which row,
// so re-running an import updates instead of duplicating.
type ImportLogStore interface {
	// Save stores or replaces the record for its fingerprint.
	Save(ctx context.Context, record domain.ImportRecord) error

	// Get returns the record for a fingerprint.
	// Returns domain.ErrNotFound if the row was never imported.
	Get(ctx context.Context, fingerprint string) (*domain.ImportRecord, error)

	// ListRun returns all records written by one import run.
	ListRun(ctx context.Context, runID string) ([]domain.ImportRecord, error)

	// Delete removes the record for a fingerprint.
	Delete(ctx context.Context, fingerprint string) error
}
