package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// importLogStore implements driven.ImportLogStore.
type importLogStore struct {
	store *Store
}

var _ driven.ImportLogStore = (*importLogStore)(nil)

// Save stores or replaces the record for its fingerprint.
func (s *importLogStore) Save(ctx context.Context, record domain.ImportRecord) error {
	if record.Fingerprint == "" {
		return fmt.Errorf("%w: empty fingerprint", domain.ErrInvalidInput)
	}
	if record.ImportedAt.IsZero() {
		record.ImportedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO import_log (fingerprint, run_id, calendar_id, appointment_id, title, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET
			run_id = excluded.run_id,
			calendar_id = excluded.calendar_id,
			appointment_id = excluded.appointment_id,
			title = excluded.title,
			imported_at = excluded.imported_at
	`, record.Fingerprint, record.RunID, record.CalendarID, record.AppointmentID,
		record.Title, record.ImportedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving import record: %w", err)
	}
	return nil
}

// Get retrieves the record for a fingerprint.
func (s *importLogStore) Get(ctx context.Context, fingerprint string) (*domain.ImportRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT fingerprint, run_id, calendar_id, appointment_id, title, imported_at
		FROM import_log WHERE fingerprint = ?
	`, fingerprint)

	record, err := scanImportRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning import record: %w", err)
	}
	return record, nil
}

// ListRun returns all records written by one run, oldest first.
func (s *importLogStore) ListRun(ctx context.Context, runID string) ([]domain.ImportRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT fingerprint, run_id, calendar_id, appointment_id, title, imported_at
		FROM import_log WHERE run_id = ?
		ORDER BY imported_at, fingerprint
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying import log: %w", err)
	}
	defer rows.Close()

	var records []domain.ImportRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanImportRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning import record: %w", err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating import log: %w", err)
	}

	return records, nil
}

// Delete removes the record for a fingerprint.
func (s *importLogStore) Delete(ctx context.Context, fingerprint string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM import_log WHERE fingerprint = ?", fingerprint)
	if err != nil {
		return fmt.Errorf("deleting import record: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanImportRecord(row scanner) (*domain.ImportRecord, error) {
	var record domain.ImportRecord
	var importedAt sql.NullTime
	if err := row.Scan(&record.Fingerprint, &record.RunID, &record.CalendarID,
		&record.AppointmentID, &record.Title, &importedAt); err != nil {
		return nil, err
	}
	if importedAt.Valid {
		record.ImportedAt = importedAt.Time
	}
	return &record, nil
}
