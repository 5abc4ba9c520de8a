package cli

import (
	"bytes"
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// mockAuthService is a mock implementation of driving.AuthService.
type mockAuthService struct {
	user       *domain.User
	err        error
	loginCalls [][2]string
	loggedOut  bool
}

func (m *mockAuthService) Login(_ context.Context, domainURL, token string) (*domain.User, error) {
	m.loginCalls = append(m.loginCalls, [2]string{domainURL, token})
	return m.user, m.err
}

func (m *mockAuthService) WhoAmI(_ context.Context) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockAuthService) Logout() error {
	m.loggedOut = true
	return m.err
}

// mockPhonebookService is a mock implementation of driving.PhonebookService.
type mockPhonebookService struct {
	book       *domain.Phonebook
	defaults   domain.PersonFilter
	lastFilter domain.PersonFilter
	err        error
}

func (m *mockPhonebookService) Build(_ context.Context, filter domain.PersonFilter) (*domain.Phonebook, error) {
	m.lastFilter = filter
	return m.book, m.err
}

func (m *mockPhonebookService) DefaultFilter() domain.PersonFilter {
	return m.defaults
}

// mockCalendarService is a mock implementation of driving.CalendarService.
type mockCalendarService struct {
	calendars []domain.Calendar
	report    *domain.ImportReport
	err       error
	lastOpts  domain.ImportOptions
	lastTable *domain.Table
	defaults  domain.ImportOptions
}

func (m *mockCalendarService) Calendars(_ context.Context) ([]domain.Calendar, error) {
	return m.calendars, m.err
}

func (m *mockCalendarService) Import(
	ctx context.Context,
	table driven.TableSource,
	opts domain.ImportOptions,
) (*domain.ImportReport, error) {
	m.lastOpts = opts
	t, err := table.ReadTable(ctx)
	if err != nil {
		return nil, err
	}
	m.lastTable = t
	return m.report, m.err
}

func (m *mockCalendarService) DefaultOptions() domain.ImportOptions {
	return m.defaults
}

// mockSongService is a mock implementation of driving.SongService.
type mockSongService struct {
	songs    []domain.Song
	song     *domain.Song
	tags     []int
	err      error
	created  []domain.NewSong
	category string
	edits    []domain.SongEdit
	deleted  []int
	tagCalls []string
}

func (m *mockSongService) List(_ context.Context) ([]domain.Song, error) {
	return m.songs, m.err
}

func (m *mockSongService) Get(_ context.Context, _ int) (*domain.Song, error) {
	return m.song, m.err
}

func (m *mockSongService) Create(_ context.Context, song domain.NewSong, category string) (int, error) {
	m.created = append(m.created, song)
	m.category = category
	return 77, m.err
}

func (m *mockSongService) Edit(_ context.Context, _ int, edit domain.SongEdit) error {
	m.edits = append(m.edits, edit)
	return m.err
}

func (m *mockSongService) Delete(_ context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

func (m *mockSongService) AddTag(_ context.Context, _, _ int) error {
	m.tagCalls = append(m.tagCalls, "add")
	return m.err
}

func (m *mockSongService) RemoveTag(_ context.Context, _, _ int) error {
	m.tagCalls = append(m.tagCalls, "remove")
	return m.err
}

func (m *mockSongService) Tags(_ context.Context, _ int) ([]int, error) {
	return m.tags, m.err
}

func (m *mockSongService) HasTag(_ context.Context, _, _ int) (bool, error) {
	return len(m.tags) > 0, m.err
}

func (m *mockSongService) WithTag(_ context.Context, _ int) ([]domain.Song, error) {
	return m.songs, m.err
}

// mockFileService is a mock implementation of driving.FileService.
type mockFileService struct {
	files      []domain.File
	err        error
	target     domain.FileDomain
	uploadPath string
	name       string
	overwrite  bool
	dir        string
}

func (m *mockFileService) List(_ context.Context, target domain.FileDomain) ([]domain.File, error) {
	m.target = target
	return m.files, m.err
}

func (m *mockFileService) Upload(_ context.Context, path string, target domain.FileDomain, name string, overwrite bool) error {
	m.uploadPath, m.target, m.name, m.overwrite = path, target, name, overwrite
	return m.err
}

func (m *mockFileService) Delete(_ context.Context, target domain.FileDomain, name string) error {
	m.target, m.name = target, name
	return m.err
}

func (m *mockFileService) Download(_ context.Context, name string, target domain.FileDomain, dir string) (string, error) {
	m.name, m.target, m.dir = name, target, dir
	return dir + "/" + name, m.err
}
