package churchtools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// pageSize is requested from list endpoints that accept a limit.
const pageSize = 100

// WhoAmI returns the authenticated account.
func (c *Client) WhoAmI(ctx context.Context) (*domain.User, error) {
	user, err := getData[domain.User](ctx, c, "/api/whoami", nil)
	if err != nil {
		return nil, fmt.Errorf("whoami: %w", err)
	}
	return &user, nil
}

// ListPersons returns all persons matching the filter.
// ID restrictions are sent to the server; status, campus and archive
// filtering is applied locally.
func (c *Client) ListPersons(ctx context.Context, filter domain.PersonFilter) ([]domain.Person, error) {
	query := url.Values{"limit": {strconv.Itoa(pageSize)}}
	for _, id := range filter.IDs {
		query.Add("ids[]", strconv.Itoa(id))
	}

	persons, err := listAll[domain.Person](ctx, c, "/api/persons", query)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	matched := make([]domain.Person, 0, len(persons))
	for i := range persons {
		if filter.Matches(&persons[i]) {
			matched = append(matched, persons[i])
		}
	}
	logger.Debug("Fetched %d persons, %d match filter", len(persons), len(matched))
	return matched, nil
}

// ListGroups returns all groups.
func (c *Client) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups, err := listAll[domain.Group](ctx, c, "/api/groups", url.Values{"limit": {strconv.Itoa(pageSize)}})
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// ValidateCredentials checks the token by calling whoami.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	return c.doJSON(ctx, request{method: http.MethodGet, path: "/api/whoami"}, nil)
}
