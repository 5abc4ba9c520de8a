package churchtools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// ListEvents returns events in the queried time span.
func (c *Client) ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.Event, error) {
	params := url.Values{}
	if !query.From.IsZero() {
		params.Set("from", query.From.Format(dateLayout))
	}
	if !query.To.IsZero() {
		params.Set("to", query.To.Format(dateLayout))
	}
	if query.Canceled {
		params.Set("canceled", "true")
	}
	if query.Direction != "" {
		params.Set("direction", query.Direction)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Include != "" {
		params.Set("include", query.Include)
	}

	events, err := listAll[domain.Event](ctx, c, "/api/events", params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// EventAgenda returns the agenda of an event.
// Returns domain.ErrNotFound if the event has no agenda.
func (c *Client) EventAgenda(ctx context.Context, eventID int) (*domain.Agenda, error) {
	agenda, err := getData[domain.Agenda](ctx, c, fmt.Sprintf("/api/events/%d/agenda", eventID), nil)
	if err != nil {
		return nil, fmt.Errorf("event %d agenda: %w", eventID, err)
	}
	return &agenda, nil
}
