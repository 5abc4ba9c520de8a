package mcp

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// mockPhonebookService is a mock implementation of driving.PhonebookService.
type mockPhonebookService struct {
	book       *domain.Phonebook
	defaults   domain.PersonFilter
	lastFilter domain.PersonFilter
	err        error
}

func (m *mockPhonebookService) Build(_ context.Context, filter domain.PersonFilter) (*domain.Phonebook, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	if m.book == nil {
		return &domain.Phonebook{}, nil
	}
	return m.book, nil
}

func (m *mockPhonebookService) DefaultFilter() domain.PersonFilter {
	return m.defaults
}

// mockCalendarService is a mock implementation of driving.CalendarService.
type mockCalendarService struct {
	calendars []domain.Calendar
	err       error
}

func (m *mockCalendarService) Calendars(_ context.Context) ([]domain.Calendar, error) {
	return m.calendars, m.err
}

func (m *mockCalendarService) Import(
	_ context.Context,
	_ driven.TableSource,
	_ domain.ImportOptions,
) (*domain.ImportReport, error) {
	return nil, m.err
}

func (m *mockCalendarService) DefaultOptions() domain.ImportOptions {
	return domain.ImportOptions{}
}

// mockSongService is a mock implementation of driving.SongService.
type mockSongService struct {
	song   *domain.Song
	tagged []domain.Song
	err    error
}

func (m *mockSongService) List(_ context.Context) ([]domain.Song, error) {
	return m.tagged, m.err
}

func (m *mockSongService) Get(_ context.Context, _ int) (*domain.Song, error) {
	return m.song, m.err
}

func (m *mockSongService) Create(_ context.Context, _ domain.NewSong, _ string) (int, error) {
	return 0, m.err
}

func (m *mockSongService) Edit(_ context.Context, _ int, _ domain.SongEdit) error {
	return m.err
}

func (m *mockSongService) Delete(_ context.Context, _ int) error {
	return m.err
}

func (m *mockSongService) AddTag(_ context.Context, _, _ int) error {
	return m.err
}

func (m *mockSongService) RemoveTag(_ context.Context, _, _ int) error {
	return m.err
}

func (m *mockSongService) Tags(_ context.Context, _ int) ([]int, error) {
	return nil, m.err
}

func (m *mockSongService) HasTag(_ context.Context, _, _ int) (bool, error) {
	return false, m.err
}

func (m *mockSongService) WithTag(_ context.Context, _ int) ([]domain.Song, error) {
	return m.tagged, m.err
}
