package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// mockDirectory implements driven.DirectoryClient.
type mockDirectory struct {
	mu           sync.Mutex
	user         *domain.User
	persons      []domain.Person
	calendars    []domain.Calendar
	err          error
	upsertErr    map[string]error
	nextID       int
	appointments []domain.Appointment
	lastFilter   domain.PersonFilter
}

var _ driven.DirectoryClient = (*mockDirectory)(nil)

func (m *mockDirectory) WhoAmI(_ context.Context) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockDirectory) ListPersons(_ context.Context, filter domain.PersonFilter) ([]domain.Person, error) {
	m.lastFilter = filter
	return m.persons, m.err
}

func (m *mockDirectory) ListCalendars(_ context.Context) ([]domain.Calendar, error) {
	return m.calendars, m.err
}

func (m *mockDirectory) UpsertAppointment(_ context.Context, a domain.Appointment) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.upsertErr[a.Title]; err != nil {
		return nil, err
	}
	if a.ID == 0 {
		m.nextID++
		a.ID = 1000 + m.nextID
	}
	m.appointments = append(m.appointments, a)
	return &a, nil
}

func (m *mockDirectory) ListEvents(_ context.Context, _ domain.EventQuery) ([]domain.Event, error) {
	return nil, m.err
}

func (m *mockDirectory) EventAgenda(_ context.Context, _ int) (*domain.Agenda, error) {
	return nil, domain.ErrNotFound
}

func (m *mockDirectory) ListGroups(_ context.Context) ([]domain.Group, error) {
	return nil, m.err
}

// mockTable implements driven.TableSource.
type mockTable struct {
	table    *domain.Table
	readErr  error
	writeErr error
	written  *domain.Table
	writes   int
}

var _ driven.TableSource = (*mockTable)(nil)

func newMockTable(header []string, rows ...[]string) *mockTable {
	t := &domain.Table{Header: header}
	for _, cells := range rows {
		row := domain.Row{}
		for i, h := range header {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return &mockTable{table: t}
}

func (m *mockTable) ReadTable(_ context.Context) (*domain.Table, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.table, nil
}

func (m *mockTable) WriteTable(_ context.Context, t *domain.Table) error {
	m.writes++
	m.written = t
	return m.writeErr
}

func (m *mockTable) Location() string { return "mock.csv" }

// mockSongs implements driven.SongClient.
type mockSongs struct {
	songs      map[int]domain.Song
	categories map[string]int
	tags       map[int][]int
	created    []domain.NewSong
	edited     []domain.Song
	deleted    []int
	err        error
}

var _ driven.SongClient = (*mockSongs)(nil)

func (m *mockSongs) ListSongs(_ context.Context) ([]domain.Song, error) {
	if m.err != nil {
		return nil, m.err
	}
	songs := make([]domain.Song, 0, len(m.songs))
	for _, s := range m.songs {
		songs = append(songs, s)
	}
	sort.Slice(songs, func(i, j int) bool { return songs[i].ID > songs[j].ID })
	return songs, nil
}

func (m *mockSongs) GetSong(_ context.Context, id int) (*domain.Song, error) {
	s, ok := m.songs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *mockSongs) SongCategories(_ context.Context) (map[string]int, error) {
	return m.categories, m.err
}

func (m *mockSongs) CreateSong(_ context.Context, song domain.NewSong) (int, error) {
	m.created = append(m.created, song)
	return 500 + len(m.created), nil
}

func (m *mockSongs) EditSong(_ context.Context, song domain.Song) error {
	m.edited = append(m.edited, song)
	return nil
}

func (m *mockSongs) DeleteSong(_ context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockSongs) AddSongTag(_ context.Context, songID, tagID int) error {
	if !containsID(m.tags[songID], tagID) {
		m.tags[songID] = append(m.tags[songID], tagID)
	}
	return nil
}

func (m *mockSongs) RemoveSongTag(_ context.Context, songID, tagID int) error {
	var kept []int
	for _, t := range m.tags[songID] {
		if t != tagID {
			kept = append(kept, t)
		}
	}
	m.tags[songID] = kept
	return nil
}

func (m *mockSongs) SongTags(_ context.Context, songID int) ([]int, error) {
	tags, ok := m.tags[songID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tags, nil
}

func (m *mockSongs) AllSongTags(_ context.Context) (map[int][]int, error) {
	return m.tags, m.err
}

// mockFiles implements driven.FileClient with an in-memory file list.
type mockFiles struct {
	files     []domain.File
	content   map[string]string
	deletes   int
	uploadErr error
}

var _ driven.FileClient = (*mockFiles)(nil)

func newMockFiles(files map[string]string) *mockFiles {
	m := &mockFiles{content: map[string]string{}}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m.add(name, files[name])
	}
	return m
}

func (m *mockFiles) add(name, content string) {
	id := len(m.content) + 1
	url := fmt.Sprintf("https://example.church.tools/files/%d", id)
	m.files = append(m.files, domain.File{ID: id, Name: name, FileURL: url})
	m.content[url] = content
}

func (m *mockFiles) ListFiles(_ context.Context, _ domain.FileDomain) ([]domain.File, error) {
	return append([]domain.File(nil), m.files...), nil
}

func (m *mockFiles) UploadFile(_ context.Context, _ domain.FileDomain, name string, r io.Reader) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.add(name, string(raw))
	return nil
}

func (m *mockFiles) DeleteFiles(_ context.Context, _ domain.FileDomain) error {
	m.deletes++
	m.files = nil
	return nil
}

func (m *mockFiles) DownloadFile(_ context.Context, fileURL string, w io.Writer) error {
	content, ok := m.content[fileURL]
	if !ok {
		return domain.ErrNotFound
	}
	_, err := io.Copy(w, strings.NewReader(content))
	return err
}

// byName returns the content of the current file with that name.
func (m *mockFiles) byName(name string) (string, bool) {
	for _, f := range m.files {
		if f.Name == name {
			return m.content[f.FileURL], true
		}
	}
	return "", false
}
