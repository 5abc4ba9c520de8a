package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for ChurchTools resources.
	uriScheme = "churchtools://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "calendars",
		Name:        "calendars",
		Description: "List of all calendars",
		MIMEType:    "application/json",
	}, s.handleCalendarsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "songs/{songId}",
		Name:        "song",
		Description: "A song with its arrangements",
		MIMEType:    "application/json",
	}, s.handleSongResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "tags/{tagId}/songs",
		Name:        "tagged-songs",
		Description: "Songs carrying a specific tag",
		MIMEType:    "application/json",
	}, s.handleTaggedSongsResource)
}

// handleCalendarsResource returns a list of all calendars.
func (s *Server) handleCalendarsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Calendar == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	calendars, err := s.ports.Calendar.Calendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}

	data, err := json.MarshalIndent(calendars, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling calendars: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleSongResource returns a single song.
func (s *Server) handleSongResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Songs == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	songID := extractSongID(req.Params.URI)
	if songID == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	song, err := s.ports.Songs.Get(ctx, songID)
	if err != nil {
		return nil, fmt.Errorf("getting song: %w", err)
	}

	data, err := json.MarshalIndent(song, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling song: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleTaggedSongsResource returns the songs carrying a tag.
func (s *Server) handleTaggedSongsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Songs == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	tagID := extractTagID(req.Params.URI)
	if tagID == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	songs, err := s.ports.Songs.WithTag(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("listing songs: %w", err)
	}

	type songInfo struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	infos := make([]songInfo, len(songs))
	for i := range songs {
		infos[i] = songInfo{ID: songs[i].ID, Name: songs[i].Name}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling songs: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractSongID extracts the song ID from a URI like churchtools://songs/{songId}.
// Returns 0 for malformed URIs.
func extractSongID(uri string) int {
	const prefix = uriScheme + "songs/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}
	return positiveInt(strings.TrimPrefix(uri, prefix))
}

// extractTagID extracts the tag ID from a URI like churchtools://tags/{tagId}/songs.
func extractTagID(uri string) int {
	const prefix = uriScheme + "tags/"
	const suffix = "/songs"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return 0
	}
	return positiveInt(strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix))
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
