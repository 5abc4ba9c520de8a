package churchtools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// ListSongs returns all songs.
func (c *Client) ListSongs(ctx context.Context) ([]domain.Song, error) {
	songs, err := listAll[domain.Song](ctx, c, "/api/songs", url.Values{"limit": {strconv.Itoa(pageSize)}})
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return songs, nil
}

// GetSong returns a single song.
func (c *Client) GetSong(ctx context.Context, id int) (*domain.Song, error) {
	song, err := getData[domain.Song](ctx, c, fmt.Sprintf("/api/songs/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("get song %d: %w", id, err)
	}
	return &song, nil
}

// SongCategories maps category names to IDs using the event masterdata.
func (c *Client) SongCategories(ctx context.Context) (map[string]int, error) {
	masterdata, err := getData[struct {
		SongCategories []domain.SongCategory `json:"songCategories"`
	}](ctx, c, "/api/event/masterdata", nil)
	if err != nil {
		return nil, fmt.Errorf("song categories: %w", err)
	}

	categories := make(map[string]int, len(masterdata.SongCategories))
	for _, category := range masterdata.SongCategories {
		categories[category.Name] = category.ID
	}
	return categories, nil
}

// CreateSong creates a song through the legacy AJAX API.
func (c *Client) CreateSong(ctx context.Context, song domain.NewSong) (int, error) {
	form := url.Values{
		"bezeichnung":     {song.Title},
		"songcategory_id": {strconv.Itoa(song.CategoryID)},
		"author":          {song.Author},
		"copyright":       {song.Copyright},
		"ccli":            {song.CCLI},
		"tonality":        {song.Tonality},
		"bpm":             {song.BPM},
		"beat":            {song.Beat},
	}
	data, err := c.ajax(ctx, "addNewSong", form)
	if err != nil {
		return 0, fmt.Errorf("create song: %w", err)
	}

	var id flexInt
	if err := json.Unmarshal(data, &id); err != nil {
		return 0, fmt.Errorf("create song: %w: %v", ErrUnexpectedResponse, err)
	}
	return int(id), nil
}

// EditSong overwrites the editable fields of the song. BPM and beat belong
// to arrangements and cannot be edited here.
func (c *Client) EditSong(ctx context.Context, song domain.Song) error {
	form := url.Values{
		"id":              {strconv.Itoa(song.ID)},
		"bezeichnung":     {song.Name},
		"songcategory_id": {strconv.Itoa(song.Category.ID)},
		"author":          {song.Author},
		"copyright":       {song.Copyright},
		"ccli":            {song.CCLI},
		"practice_yn":     {boolFlag(song.ShouldPractice)},
	}
	if _, err := c.ajax(ctx, "editSong", form); err != nil {
		return fmt.Errorf("edit song %d: %w", song.ID, err)
	}
	return nil
}

// DeleteSong deletes a song.
func (c *Client) DeleteSong(ctx context.Context, id int) error {
	if _, err := c.ajax(ctx, "deleteSong", url.Values{"id": {strconv.Itoa(id)}}); err != nil {
		return fmt.Errorf("delete song %d: %w", id, err)
	}
	return nil
}

// AddSongTag attaches a tag. Re-adding an existing tag is a no-op.
func (c *Client) AddSongTag(ctx context.Context, songID, tagID int) error {
	if _, err := c.ajax(ctx, "addSongTag", tagForm(songID, tagID)); err != nil {
		return fmt.Errorf("add tag %d to song %d: %w", tagID, songID, err)
	}
	return nil
}

// RemoveSongTag detaches a tag. Removing a missing tag is a no-op.
func (c *Client) RemoveSongTag(ctx context.Context, songID, tagID int) error {
	if _, err := c.ajax(ctx, "delSongTag", tagForm(songID, tagID)); err != nil {
		return fmt.Errorf("remove tag %d from song %d: %w", tagID, songID, err)
	}
	return nil
}

// SongTags returns the tag IDs of a song.
func (c *Client) SongTags(ctx context.Context, songID int) ([]int, error) {
	all, err := c.AllSongTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("song %d tags: %w", songID, err)
	}
	tags, ok := all[songID]
	if !ok {
		return nil, fmt.Errorf("song %d tags: %w", songID, domain.ErrNotFound)
	}
	return tags, nil
}

// AllSongTags returns the tag IDs of every song. The REST API does not
// expose tags, so the legacy song list is used.
func (c *Client) AllSongTags(ctx context.Context) (map[int][]int, error) {
	data, err := c.ajax(ctx, "getAllSongs", nil)
	if err != nil {
		return nil, err
	}

	var all struct {
		Songs map[string]struct {
			Tags []flexInt `json:"tags"`
		} `json:"songs"`
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: songs: %v", ErrUnexpectedResponse, err)
	}

	result := make(map[int][]int, len(all.Songs))
	for key, song := range all.Songs {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		tags := make([]int, 0, len(song.Tags))
		for _, tag := range song.Tags {
			tags = append(tags, int(tag))
		}
		result[id] = tags
	}
	return result, nil
}

func tagForm(songID, tagID int) url.Values {
	return url.Values{"id": {strconv.Itoa(songID)}, "tag_id": {strconv.Itoa(tagID)}}
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// flexInt decodes integers the legacy API sends either as numbers or strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", s)
	}
	*f = flexInt(n)
	return nil
}
