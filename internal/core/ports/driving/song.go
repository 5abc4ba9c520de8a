package driving

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// SongService manages songs and their tags.
type SongService interface {
	List(ctx context.Context) ([]domain.Song, error)
	Get(ctx context.Context, id int) (*domain.Song, error)

	// Create creates a song. category is a category name or numeric ID.
	Create(ctx context.Context, song domain.NewSong, category string) (int, error)

	// Edit applies the non-nil fields of edit to the song.
	Edit(ctx context.Context, id int, edit domain.SongEdit) error
	Delete(ctx context.Context, id int) error

	AddTag(ctx context.Context, songID, tagID int) error
	RemoveTag(ctx context.Context, songID, tagID int) error
	Tags(ctx context.Context, songID int) ([]int, error)
	HasTag(ctx context.Context, songID, tagID int) (bool, error)

	// WithTag returns all songs carrying the tag.
	WithTag(ctx context.Context, tagID int) ([]domain.Song, error)
}
