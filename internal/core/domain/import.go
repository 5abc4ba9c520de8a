package domain

import (
	"strings"
	"time"
)

// Calendar import column names. Header matching is case-insensitive.
const (
	ColumnCalendar    = "calendar"
	ColumnTitle       = "title"
	ColumnSubtitle    = "subtitle"
	ColumnDescription = "description"
	ColumnStart       = "start"
	ColumnEnd         = "end"
	ColumnAllDay      = "allday"
	ColumnAddress     = "address"
	ColumnLink        = "link"
	ColumnInternal    = "internal"
	ColumnComment     = "comment"
	ColumnID          = "id"
	ColumnStatus      = "status"
)

// Row is one spreadsheet row keyed by lower-cased column header.
type Row map[string]string

// Get returns the trimmed cell value for a column.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Table is a header plus its rows as read from a spreadsheet.
type Table struct {
	Header []string
	Rows   []Row
}

// ImportOptions controls a calendar import run.
type ImportOptions struct {
	// DryRun resolves and validates rows without calling the API or
	// writing the table back.
	DryRun bool

	// DefaultCalendar is used for rows with an empty calendar cell.
	DefaultCalendar string
}

// ImportStatus is written to the status column of each row.
type ImportStatus string

const (
	ImportCreated ImportStatus = "created"
	ImportUpdated ImportStatus = "updated"
	ImportSkipped ImportStatus = "skipped"
	ImportValid   ImportStatus = "valid"
	ImportError   ImportStatus = "error"
)

// ImportRecord links a row fingerprint to the appointment created for it.
type ImportRecord struct {
	Fingerprint   string
	RunID         string
	CalendarID    int
	AppointmentID int
	Title         string
	ImportedAt    time.Time
}

// ImportReport summarises one import run. Valid counts rows that passed
// validation in a dry run.
type ImportReport struct {
	RunID   string
	Total   int
	Created int
	Updated int
	Skipped int
	Valid   int
	Failed  int
	Errors  []RowError
}

// RowError is a failure attached to a 1-based data row number.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return e.Err.Error()
}

func (e RowError) Unwrap() error {
	return e.Err
}
