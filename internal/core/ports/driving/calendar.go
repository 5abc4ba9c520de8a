package driving

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// CalendarService imports appointments from spreadsheets.
type CalendarService interface {
	// Calendars lists the calendars appointments can be imported into.
	Calendars(ctx context.Context) ([]domain.Calendar, error)

	// Import creates or updates one appointment per table row and writes
	// the appointment IDs and row status back into the table.
	Import(ctx context.Context, table driven.TableSource, opts domain.ImportOptions) (*domain.ImportReport, error)

	// DefaultOptions returns the import options from configuration.
	DefaultOptions() domain.ImportOptions
}
