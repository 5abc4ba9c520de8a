package driven

import (
	"context"
	"io"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// DirectoryClient is the church-management platform seen from the core.
// Implementations handle transport, authentication, pagination and rate
// limiting; callers only deal in domain types.
type DirectoryClient interface {
	// WhoAmI returns the account the client is authenticated as.
	WhoAmI(ctx context.Context) (*domain.User, error)

	// ListPersons returns all persons matching the filter, across all pages.
	ListPersons(ctx context.Context, filter domain.PersonFilter) ([]domain.Person, error)

	// ListCalendars returns all calendars visible to the account.
	ListCalendars(ctx context.Context) ([]domain.Calendar, error)

	// UpsertAppointment creates the appointment when its ID is zero and
	// updates it otherwise. The returned appointment carries the server ID.
	UpsertAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)

	// ListEvents returns events in the queried time span.
	ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.Event, error)

	// EventAgenda returns the agenda of an event.
	// Returns domain.ErrNotFound if the event has no agenda.
	EventAgenda(ctx context.Context, eventID int) (*domain.Agenda, error)

	// ListGroups returns all groups.
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

// SongClient manages the song database.
type SongClient interface {
	ListSongs(ctx context.Context) ([]domain.Song, error)
	GetSong(ctx context.Context, id int) (*domain.Song, error)

	// SongCategories maps category names to their IDs.
	SongCategories(ctx context.Context) (map[string]int, error)

	// CreateSong creates a song and returns its ID. Duplicates are not checked.
	CreateSong(ctx context.Context, song domain.NewSong) (int, error)

	// EditSong overwrites all editable fields of the song.
	EditSong(ctx context.Context, song domain.Song) error
	DeleteSong(ctx context.Context, id int) error

	AddSongTag(ctx context.Context, songID, tagID int) error
	RemoveSongTag(ctx context.Context, songID, tagID int) error

	// SongTags returns the tag IDs attached to a song.
	SongTags(ctx context.Context, songID int) ([]int, error)

	// AllSongTags returns the tag IDs of every song keyed by song ID.
	AllSongTags(ctx context.Context) (map[int][]int, error)
}

// FileClient manages attachments of module objects.
type FileClient interface {
	ListFiles(ctx context.Context, target domain.FileDomain) ([]domain.File, error)
	UploadFile(ctx context.Context, target domain.FileDomain, name string, content io.Reader) error

	// DeleteFiles removes ALL files attached to the target.
	DeleteFiles(ctx context.Context, target domain.FileDomain) error

	// DownloadFile streams the file behind a fileUrl into w.
	DownloadFile(ctx context.Context, fileURL string, w io.Writer) error
}
