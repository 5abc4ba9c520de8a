package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driven/storage/memory"
	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

var importHeader = []string{
	domain.ColumnCalendar, domain.ColumnTitle, domain.ColumnStart, domain.ColumnEnd,
	domain.ColumnAddress, domain.ColumnAllDay,
}

func newImportService(directory *mockDirectory, log driven.ImportLogStore) *CalendarImportService {
	service := NewCalendarImportService(directory, log, nil)
	service.SetLocation(time.UTC)
	service.newRunID = func() string { return "run-1" }
	return service
}

func testCalendars() []domain.Calendar {
	return []domain.Calendar{{ID: 2, Name: "Gottesdienste"}, {ID: 7, Name: "Jugend"}}
}

func TestCalendarImportService_Import_Creates(t *testing.T) {
	directory := &mockDirectory{calendars: testCalendars()}
	log := memory.NewImportLogStore()
	service := newImportService(directory, log)
	table := newMockTable(importHeader,
		[]string{"gottesdienste", "Gemeindefest", "2024-05-01", "", "Waldweg, 45754 Timbuktu", ""},
		[]string{"7", "Jugendabend", "2024-05-03 19:30", "2024-05-03 22:00", "Freie Kirche Musterstadt", ""},
	)

	report, err := service.Import(context.Background(), table, domain.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Created)
	assert.Zero(t, report.Failed)
	require.Len(t, directory.appointments, 2)

	fest := directory.appointments[0]
	assert.Equal(t, 2, fest.CalendarID)
	assert.True(t, fest.AllDay)
	assert.Equal(t, fest.StartDate, fest.EndDate)
	require.NotNil(t, fest.Address)
	assert.Equal(t, domain.AppointmentAddress{Street: "Waldweg", Zip: "45754", City: "Timbuktu"}, *fest.Address)

	youth := directory.appointments[1]
	assert.False(t, youth.AllDay)
	assert.Equal(t, time.Date(2024, 5, 3, 19, 30, 0, 0, time.UTC), youth.StartDate)
	assert.Equal(t, time.Date(2024, 5, 3, 22, 0, 0, 0, time.UTC), youth.EndDate)
	assert.Equal(t, "Freie Kirche Musterstadt", youth.Address.MeetingAt)

	require.Equal(t, 1, table.writes)
	assert.Contains(t, table.written.Header, domain.ColumnID)
	assert.Contains(t, table.written.Header, domain.ColumnStatus)
	assert.Equal(t, "1001", table.written.Rows[0][domain.ColumnID])
	assert.Equal(t, "created", table.written.Rows[0][domain.ColumnStatus])

	records, err := log.ListRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCalendarImportService_Import_RerunUpdates(t *testing.T) {
	directory := &mockDirectory{calendars: testCalendars()}
	log := memory.NewImportLogStore()
	service := newImportService(directory, log)
	row := []string{"Gottesdienste", "Gemeindefest", "2024-05-01"}

	_, err := service.Import(context.Background(), newMockTable(importHeader, row), domain.ImportOptions{})
	require.NoError(t, err)

	// A fresh table without the id column still finds the appointment.
	report, err := service.Import(context.Background(), newMockTable(importHeader, row), domain.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Updated)
	assert.Zero(t, report.Created)
	require.Len(t, directory.appointments, 2)
	assert.Equal(t, directory.appointments[0].ID, directory.appointments[1].ID)
}

func TestCalendarImportService_Import_IDColumn(t *testing.T) {
	directory := &mockDirectory{calendars: testCalendars()}
	service := newImportService(directory, nil)
	header := append(append([]string(nil), importHeader...), domain.ColumnID)
	table := newMockTable(header,
		[]string{"2", "Mit ID", "2024-05-01", "", "", "", "42"},
		[]string{"2", "Kaputte ID", "2024-05-01", "", "", "", "abc"},
	)

	report, err := service.Import(context.Background(), table, domain.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 42, directory.appointments[0].ID)
	assert.True(t, strings.HasPrefix(table.written.Rows[1][domain.ColumnStatus], "error: "))
	assert.ErrorIs(t, report.Errors[0], domain.ErrInvalidInput)
	assert.Equal(t, 2, report.Errors[0].Row)
}

func TestCalendarImportService_Import_RowErrors(t *testing.T) {
	directory := &mockDirectory{
		calendars: testCalendars(),
		upsertErr: map[string]error{"Server sagt nein": errors.New("boom")},
	}
	service := newImportService(directory, nil)
	table := newMockTable(importHeader,
		[]string{"Unbekannt", "A", "2024-05-01"},
		[]string{"2", "", "2024-05-01"},
		[]string{"2", "B", "morgen"},
		[]string{"2", "C", "2024-05-02 10:00", "2024-05-02 09:00"},
		[]string{"2", "Server sagt nein", "2024-05-01"},
		[]string{"2", "OK", "2024-05-01"},
	)

	report, err := service.Import(context.Background(), table, domain.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Failed)
	assert.Equal(t, 1, report.Created)
	assert.ErrorIs(t, report.Errors[0], domain.ErrCalendarNotFound)
	assert.ErrorIs(t, report.Errors[1], domain.ErrInvalidInput)
	assert.ErrorIs(t, report.Errors[2], domain.ErrInvalidInput)
	assert.ErrorIs(t, report.Errors[3], domain.ErrInvalidInput)
	assert.Equal(t, "error: boom", table.written.Rows[4][domain.ColumnStatus])
}

func TestCalendarImportService_Import_DefaultCalendar(t *testing.T) {
	directory := &mockDirectory{calendars: testCalendars()}
	service := newImportService(directory, nil)
	table := newMockTable(importHeader, []string{"", "Ohne Kalender", "2024-05-01"})

	report, err := service.Import(context.Background(), table, domain.ImportOptions{DefaultCalendar: "Jugend"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 7, directory.appointments[0].CalendarID)
}

func TestCalendarImportService_Import_DryRun(t *testing.T) {
	directory := &mockDirectory{calendars: testCalendars()}
	service := newImportService(directory, memory.NewImportLogStore())
	table := newMockTable(importHeader,
		[]string{"2", "Chorabend", "2024-05-01"},
		[]string{"99", "Falsch", "2024-05-01"},
	)

	report, err := service.Import(context.Background(), table, domain.ImportOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Failed)
	assert.Empty(t, directory.appointments)
	assert.Zero(t, table.writes)
}

func TestCalendarImportService_Import_SkipMarker(t *testing.T) {
	directory := &mockDirectory{calendars: testCalendars()}
	service := newImportService(directory, nil)
	header := append(append([]string(nil), importHeader...), domain.ColumnStatus)
	table := newMockTable(header, []string{"2", "Nicht anfassen", "2024-05-01", "", "", "", "skip"})

	report, err := service.Import(context.Background(), table, domain.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, directory.appointments)
}

func TestCalendarImportService_Import_AllDayFlag(t *testing.T) {
	directory := &mockDirectory{calendars: testCalendars()}
	service := newImportService(directory, nil)
	table := newMockTable(importHeader, []string{"2", "Freizeit", "2024-05-01 00:00", "2024-05-03 00:00", "", "ja"})

	_, err := service.Import(context.Background(), table, domain.ImportOptions{})
	require.NoError(t, err)

	require.Len(t, directory.appointments, 1)
	assert.True(t, directory.appointments[0].AllDay)
}

func TestCalendarImportService_parseTime(t *testing.T) {
	service := newImportService(&mockDirectory{}, nil)

	tests := []struct {
		value    string
		want     time.Time
		dateOnly bool
	}{
		{"2024-05-01T19:30:00+02:00", time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC), false},
		{"2024-05-01 19:30", time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC), false},
		{"2024-05-01T19:30", time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC), false},
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"01.05.2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, dateOnly, err := service.parseTime(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, tt.dateOnly, dateOnly)
		})
	}

	_, _, err := service.parseTime("1. Mai 2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalendarImportService_Import_TableErrors(t *testing.T) {
	service := newImportService(&mockDirectory{calendars: testCalendars()}, nil)

	t.Run("read", func(t *testing.T) {
		table := &mockTable{readErr: errors.New("disk gone")}
		_, err := service.Import(context.Background(), table, domain.ImportOptions{})
		assert.ErrorContains(t, err, "read table")
	})

	t.Run("write", func(t *testing.T) {
		table := newMockTable(importHeader, []string{"2", "A", "2024-05-01"})
		table.writeErr = errors.New("read-only")
		report, err := service.Import(context.Background(), table, domain.ImportOptions{})
		assert.ErrorContains(t, err, "write table")
		require.NotNil(t, report)
		assert.Equal(t, 1, report.Created)
	})

	t.Run("nil table", func(t *testing.T) {
		_, err := service.Import(context.Background(), nil, domain.ImportOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCalendarImportService_Import_Canceled(t *testing.T) {
	service := newImportService(&mockDirectory{calendars: testCalendars()}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Import(ctx, newMockTable(importHeader, []string{"2", "A", "2024-05-01"}), domain.ImportOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalendarImportService_NilDirectory(t *testing.T) {
	service := NewCalendarImportService(nil, nil, nil)

	_, err := service.Import(context.Background(), newMockTable(importHeader), domain.ImportOptions{})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = service.Calendars(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestCalendarImportService_DefaultOptions(t *testing.T) {
	config := memory.NewConfigStore(map[string]any{driven.KeyDefaultCalendar: "Gottesdienste"})
	service := NewCalendarImportService(nil, nil, config)

	assert.Equal(t, domain.ImportOptions{DefaultCalendar: "Gottesdienste"}, service.DefaultOptions())
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(2, "Gemeindefest", "2024-05-01")

	assert.Len(t, a, 64)
	assert.Equal(t, a, Fingerprint(2, "Gemeindefest", "2024-05-01"))
	assert.NotEqual(t, a, Fingerprint(3, "Gemeindefest", "2024-05-01"))
	assert.NotEqual(t, a, Fingerprint(2, "Gemeindefest", "2024-05-02"))
}

func TestParseFlag(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "x", "ja"} {
		assert.True(t, parseFlag(v), v)
	}
	for _, v := range []string{"", "0", "false", "nein", "maybe"} {
		assert.False(t, parseFlag(v), v)
	}
}
