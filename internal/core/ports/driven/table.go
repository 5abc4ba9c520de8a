package driven

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// TableSource reads and writes spreadsheet rows.
// Header names in domain.Table are lower-cased; cell values are passed
// through verbatim.
type TableSource interface {
	// ReadTable reads the header and all data rows.
	ReadTable(ctx context.Context) (*domain.Table, error)

	// WriteTable replaces the table content. Writing back the rows of the
	// last read keeps everything the header does not name: original
	// header spelling, unnamed columns and blank lines. Header columns
	// not present in the source are appended.
	WriteTable(ctx context.Context, table *domain.Table) error

	// Location identifies the table for log messages.
	Location() string
}
