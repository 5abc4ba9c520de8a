package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rh4001/ChurchToolsAPI/internal/address"
	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driving"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// Ensure CalendarImportService implements the interface.
var _ driving.CalendarService = (*CalendarImportService)(nil)

// Accepted date layouts of the start and end columns. A date-only value
// marks the appointment as all-day.
var (
	dateTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}
	dateLayouts     = []string{"2006-01-02", "02.01.2006"}
)

// defaultDuration is used for timed appointments without an end.
const defaultDuration = time.Hour

// CalendarImportService creates appointments from spreadsheet rows.
type CalendarImportService struct {
	directory driven.DirectoryClient
	importLog driven.ImportLogStore
	config    driven.ConfigStore

	location *time.Location
	newRunID func() string
}

// NewCalendarImportService creates a new calendar import service.
// importLog may be nil, in which case re-runs rely on the id column only.
func NewCalendarImportService(
	directory driven.DirectoryClient,
	importLog driven.ImportLogStore,
	config driven.ConfigStore,
) *CalendarImportService {
	return &CalendarImportService{
		directory: directory,
		importLog: importLog,
		config:    config,
		location:  time.Local,
		newRunID:  func() string { return uuid.New().String() },
	}
}

// SetLocation sets the time zone for dates without offset.
func (s *CalendarImportService) SetLocation(loc *time.Location) {
	if loc != nil {
		s.location = loc
	}
}

// Calendars lists the calendars appointments can be imported into.
func (s *CalendarImportService) Calendars(ctx context.Context) ([]domain.Calendar, error) {
	if s.directory == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.directory.ListCalendars(ctx)
}

// DefaultOptions returns the import options from configuration.
func (s *CalendarImportService) DefaultOptions() domain.ImportOptions {
	if s.config == nil {
		return domain.ImportOptions{}
	}
	return domain.ImportOptions{DefaultCalendar: s.config.GetString(driven.KeyDefaultCalendar)}
}

// Import creates or updates one appointment per row. Row failures are
// recorded in the status column and the report; only table I/O errors and
// cancellation abort the run.
func (s *CalendarImportService) Import(
	ctx context.Context,
	table driven.TableSource,
	opts domain.ImportOptions,
) (*domain.ImportReport, error) {
	if s.directory == nil {
		return nil, domain.ErrNotImplemented
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no table", domain.ErrInvalidInput)
	}

	logger.Section("Calendar import")
	data, err := table.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	data.Header = ensureColumns(data.Header, domain.ColumnID, domain.ColumnStatus)

	calendars, err := s.directory.ListCalendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	resolver := newCalendarResolver(calendars)

	report := &domain.ImportReport{RunID: s.newRunID(), Total: len(data.Rows)}
	logger.Info("Import run %s: %d rows from %s", report.RunID, report.Total, table.Location())

	for i, row := range data.Rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		status, err := s.importRow(ctx, row, resolver, opts, report.RunID)
		if err != nil {
			row[domain.ColumnStatus] = fmt.Sprintf("%s: %v", domain.ImportError, err)
			report.Failed++
			report.Errors = append(report.Errors, domain.RowError{Row: i + 1, Err: err})
			logger.Warn("Row %d: %v", i+1, err)
			continue
		}

		row[domain.ColumnStatus] = string(status)
		switch status {
		case domain.ImportCreated:
			report.Created++
		case domain.ImportUpdated:
			report.Updated++
		case domain.ImportSkipped:
			report.Skipped++
		case domain.ImportValid:
			report.Valid++
		}
	}

	if !opts.DryRun {
		if err := table.WriteTable(ctx, data); err != nil {
			return report, fmt.Errorf("write table: %w", err)
		}
	}

	logger.Info("Import finished: %d created, %d updated, %d skipped, %d failed",
		report.Created, report.Updated, report.Skipped, report.Failed)
	return report, nil
}

// importRow handles one row and writes the appointment ID back into it.
func (s *CalendarImportService) importRow(
	ctx context.Context,
	row domain.Row,
	resolver calendarResolver,
	opts domain.ImportOptions,
	runID string,
) (domain.ImportStatus, error) {
	if isSkipMarker(row.Get(domain.ColumnStatus)) {
		return domain.ImportSkipped, nil
	}

	calendarCell := row.Get(domain.ColumnCalendar)
	if calendarCell == "" {
		calendarCell = strings.TrimSpace(opts.DefaultCalendar)
	}
	calendarID, err := resolver.resolve(calendarCell)
	if err != nil {
		return "", err
	}

	appointment, err := s.buildAppointment(row, calendarID)
	if err != nil {
		return "", err
	}

	fingerprint := Fingerprint(calendarID, appointment.Title, row.Get(domain.ColumnStart))
	if err := s.reconcileID(ctx, row, fingerprint, &appointment); err != nil {
		return "", err
	}

	if opts.DryRun {
		return domain.ImportValid, nil
	}

	status := domain.ImportCreated
	if appointment.ID != 0 {
		status = domain.ImportUpdated
	}

	saved, err := s.directory.UpsertAppointment(ctx, appointment)
	if err != nil {
		return "", err
	}
	row[domain.ColumnID] = strconv.Itoa(saved.ID)

	if s.importLog != nil {
		record := domain.ImportRecord{
			Fingerprint:   fingerprint,
			RunID:         runID,
			CalendarID:    calendarID,
			AppointmentID: saved.ID,
			Title:         saved.Title,
			ImportedAt:    time.Now(),
		}
		if err := s.importLog.Save(ctx, record); err != nil {
			logger.Warn("Import log not updated for %q: %v", saved.Title, err)
		}
	}

	logger.Debug("%s appointment %d %q", status, saved.ID, saved.Title)
	return status, nil
}

// reconcileID takes the appointment ID from the id column or, failing
// that, from the import log.
func (s *CalendarImportService) reconcileID(
	ctx context.Context,
	row domain.Row,
	fingerprint string,
	appointment *domain.Appointment,
) error {
	if cell := row.Get(domain.ColumnID); cell != "" {
		id, err := strconv.Atoi(cell)
		if err != nil || id <= 0 {
			return fmt.Errorf("%w: id %q", domain.ErrInvalidInput, cell)
		}
		appointment.ID = id
		return nil
	}

	if s.importLog == nil {
		return nil
	}
	record, err := s.importLog.Get(ctx, fingerprint)
	switch {
	case err == nil:
		appointment.ID = record.AppointmentID
	case errors.Is(err, domain.ErrNotFound):
	default:
		logger.Warn("Import log lookup failed: %v", err)
	}
	return nil
}

// buildAppointment maps the row cells onto an appointment.
func (s *CalendarImportService) buildAppointment(row domain.Row, calendarID int) (domain.Appointment, error) {
	appointment := domain.Appointment{
		CalendarID:  calendarID,
		Title:       row.Get(domain.ColumnTitle),
		Subtitle:    row.Get(domain.ColumnSubtitle),
		Description: row.Get(domain.ColumnDescription),
		Comment:     row.Get(domain.ColumnComment),
		Link:        row.Get(domain.ColumnLink),
		IsInternal:  parseFlag(row.Get(domain.ColumnInternal)),
		Address:     address.Parse(row.Get(domain.ColumnAddress)).AppointmentAddress(),
	}
	if appointment.Title == "" {
		return appointment, fmt.Errorf("%w: missing title", domain.ErrInvalidInput)
	}

	startCell := row.Get(domain.ColumnStart)
	if startCell == "" {
		return appointment, fmt.Errorf("%w: missing start", domain.ErrInvalidInput)
	}
	start, dateOnly, err := s.parseTime(startCell)
	if err != nil {
		return appointment, err
	}
	appointment.StartDate = start
	appointment.AllDay = dateOnly || parseFlag(row.Get(domain.ColumnAllDay))

	if endCell := row.Get(domain.ColumnEnd); endCell != "" {
		end, _, err := s.parseTime(endCell)
		if err != nil {
			return appointment, err
		}
		if end.Before(start) {
			return appointment, fmt.Errorf("%w: end %q before start %q", domain.ErrInvalidInput, endCell, startCell)
		}
		appointment.EndDate = end
	} else if appointment.AllDay {
		appointment.EndDate = start
	} else {
		appointment.EndDate = start.Add(defaultDuration)
	}

	return appointment, nil
}

// parseTime parses a date or date-time cell. dateOnly reports whether
// the value carried no time of day.
func (s *CalendarImportService) parseTime(value string) (t time.Time, dateOnly bool, err error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, s.location); err == nil {
			return t, false, nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, s.location); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: date %q", domain.ErrInvalidInput, value)
}

// Fingerprint identifies a row across import runs.
func Fingerprint(calendarID int, title, start string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s|%s", calendarID, title, start)))
	return hex.EncodeToString(sum[:])
}

// calendarResolver maps calendar cells to calendar IDs.
type calendarResolver struct {
	ids    map[int]bool
	byName map[string]int
}

func newCalendarResolver(calendars []domain.Calendar) calendarResolver {
	r := calendarResolver{
		ids:    make(map[int]bool, len(calendars)),
		byName: make(map[string]int, len(calendars)),
	}
	for _, c := range calendars {
		r.ids[c.ID] = true
		r.byName[strings.ToLower(c.Name)] = c.ID
		if c.NameTrans != "" {
			if _, exists := r.byName[strings.ToLower(c.NameTrans)]; !exists {
				r.byName[strings.ToLower(c.NameTrans)] = c.ID
			}
		}
	}
	return r
}

// resolve accepts a numeric calendar ID or a case-insensitive name.
func (r calendarResolver) resolve(cell string) (int, error) {
	if cell == "" {
		return 0, fmt.Errorf("%w: no calendar given", domain.ErrCalendarNotFound)
	}
	if id, err := strconv.Atoi(cell); err == nil {
		if r.ids[id] {
			return id, nil
		}
		return 0, fmt.Errorf("%w: id %d", domain.ErrCalendarNotFound, id)
	}
	if id, ok := r.byName[strings.ToLower(cell)]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrCalendarNotFound, cell)
}

// ensureColumns appends missing columns to the header.
func ensureColumns(header []string, columns ...string) []string {
	for _, column := range columns {
		found := false
		for _, h := range header {
			if h == column {
				found = true
				break
			}
		}
		if !found {
			header = append(header, column)
		}
	}
	return header
}

// parseFlag interprets spreadsheet booleans.
func parseFlag(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "x", "ja", "j", "wahr":
		return true
	}
	return false
}

func isSkipMarker(status string) bool {
	switch strings.ToLower(status) {
	case "skip", string(domain.ImportSkipped):
		return true
	}
	return false
}
