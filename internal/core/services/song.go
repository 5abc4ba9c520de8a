package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driving"
)

// Ensure SongService implements the interface.
var _ driving.SongService = (*SongService)(nil)

// SongService manages the song database.
type SongService struct {
	songs driven.SongClient
}

// NewSongService creates a new song service.
func NewSongService(songs driven.SongClient) *SongService {
	return &SongService{songs: songs}
}

// List returns all songs.
func (s *SongService) List(ctx context.Context) ([]domain.Song, error) {
	if s.songs == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.songs.ListSongs(ctx)
}

// Get returns a song by ID.
func (s *SongService) Get(ctx context.Context, id int) (*domain.Song, error) {
	if s.songs == nil {
		return nil, domain.ErrNotImplemented
	}
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.songs.GetSong(ctx, id)
}

// Create creates a song in the given category.
func (s *SongService) Create(ctx context.Context, song domain.NewSong, category string) (int, error) {
	if s.songs == nil {
		return 0, domain.ErrNotImplemented
	}
	if strings.TrimSpace(song.Title) == "" {
		return 0, fmt.Errorf("%w: missing title", domain.ErrInvalidInput)
	}

	categoryID, err := s.resolveCategory(ctx, category)
	if err != nil {
		return 0, err
	}
	song.CategoryID = categoryID

	return s.songs.CreateSong(ctx, song)
}

// resolveCategory accepts a numeric ID or a category name. Names match
// exactly first, then case-insensitively.
func (s *SongService) resolveCategory(ctx context.Context, category string) (int, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return 0, fmt.Errorf("%w: missing category", domain.ErrInvalidInput)
	}
	if id, err := strconv.Atoi(category); err == nil {
		return id, nil
	}

	categories, err := s.songs.SongCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("song categories: %w", err)
	}
	if id, ok := categories[category]; ok {
		return id, nil
	}
	for name, id := range categories {
		if strings.EqualFold(name, category) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: song category %q", domain.ErrNotFound, category)
}

// Edit applies the non-nil fields of edit on top of the current song.
func (s *SongService) Edit(ctx context.Context, id int, edit domain.SongEdit) error {
	if s.songs == nil {
		return domain.ErrNotImplemented
	}

	song, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if edit.Title != nil {
		song.Name = *edit.Title
	}
	if edit.CategoryID != nil {
		song.Category.ID = *edit.CategoryID
	}
	if edit.Author != nil {
		song.Author = *edit.Author
	}
	if edit.Copyright != nil {
		song.Copyright = *edit.Copyright
	}
	if edit.CCLI != nil {
		song.CCLI = *edit.CCLI
	}
	if edit.ShouldPractice != nil {
		song.ShouldPractice = *edit.ShouldPractice
	}

	return s.songs.EditSong(ctx, *song)
}

// Delete deletes a song.
func (s *SongService) Delete(ctx context.Context, id int) error {
	if s.songs == nil {
		return domain.ErrNotImplemented
	}
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return s.songs.DeleteSong(ctx, id)
}

// AddTag attaches a tag to a song.
func (s *SongService) AddTag(ctx context.Context, songID, tagID int) error {
	if s.songs == nil {
		return domain.ErrNotImplemented
	}
	return s.songs.AddSongTag(ctx, songID, tagID)
}

// RemoveTag detaches a tag from a song.
func (s *SongService) RemoveTag(ctx context.Context, songID, tagID int) error {
	if s.songs == nil {
		return domain.ErrNotImplemented
	}
	return s.songs.RemoveSongTag(ctx, songID, tagID)
}

// Tags returns the tag IDs of a song.
func (s *SongService) Tags(ctx context.Context, songID int) ([]int, error) {
	if s.songs == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.songs.SongTags(ctx, songID)
}

// HasTag reports whether the song carries the tag.
func (s *SongService) HasTag(ctx context.Context, songID, tagID int) (bool, error) {
	tags, err := s.Tags(ctx, songID)
	if err != nil {
		return false, err
	}
	return containsID(tags, tagID), nil
}

// WithTag returns all songs carrying the tag, ordered by ID.
func (s *SongService) WithTag(ctx context.Context, tagID int) ([]domain.Song, error) {
	if s.songs == nil {
		return nil, domain.ErrNotImplemented
	}

	allTags, err := s.songs.AllSongTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("song tags: %w", err)
	}
	songs, err := s.songs.ListSongs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}

	var tagged []domain.Song
	for _, song := range songs {
		if containsID(allTags[song.ID], tagID) {
			tagged = append(tagged, song)
		}
	}
	sort.Slice(tagged, func(i, j int) bool { return tagged[i].ID < tagged[j].ID })
	return tagged, nil
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
