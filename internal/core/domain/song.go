package domain

// SongCategory is a site specific song category.
type SongCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SongArrangement is one arrangement of a song; files are attached to
// arrangements, not to the song itself.
type SongArrangement struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
	KeyOfArr  string `json:"keyOfArrangement,omitempty"`
	BPM       string `json:"bpm,omitempty"`
	Beat      string `json:"beat,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Files     []File `json:"files,omitempty"`
}

// Song is a ChurchTools song.
type Song struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Category       SongCategory      `json:"category"`
	Author         string            `json:"author"`
	Copyright      string            `json:"copyright"`
	CCLI           string            `json:"ccli"`
	ShouldPractice bool              `json:"shouldPractice"`
	Arrangements   []SongArrangement `json:"arrangements,omitempty"`
}

// NewSong holds the fields used to create a song.
type NewSong struct {
	Title      string
	CategoryID int
	Author     string
	Copyright  string
	CCLI       string
	Tonality   string
	BPM        string
	Beat       string
}

// SongEdit holds the changes applied to an existing song.
// A nil field keeps the current value, a pointer to "" clears it.
type SongEdit struct {
	Title          *string
	CategoryID     *int
	Author         *string
	Copyright      *string
	CCLI           *string
	ShouldPractice *bool
}
