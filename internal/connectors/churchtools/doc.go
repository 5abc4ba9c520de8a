// Package churchtools implements a client for the ChurchTools REST API and
// the legacy AJAX endpoints still required for song management.
//
// # Authentication
//
// Requests carry an "Authorization: Login <token>" header. The token is
// obtained lazily from a [driven.TokenProvider] on first use and attached
// through an oauth2 transport with token type "Login". Legacy AJAX and
// file endpoints additionally require a CSRF token, which is fetched from
// /api/csrftoken once per client.
//
// # Pagination
//
// List endpoints wrap their payload as {"data": [...], "meta": {"pagination":
// {"current": n, "lastPage": m}}}. The client follows pages until current
// reaches lastPage. Responses without meta are treated as a single page.
//
// # Rate Limiting
//
// A token bucket limits requests to [DefaultRequestsPerSecond] with a
// burst of [DefaultBurst]. A 429 response sets a backoff from the
// Retry-After header; the request is retried once after the backoff and a
// [RateLimitError] is returned if the server still refuses.
//
// # Errors
//
// Non-2xx responses are returned as [APIError]. A 401 is additionally
// joined with [domain.ErrAuthInvalid] so callers can test with errors.Is.
//
// # Example Usage
//
//	cfg := churchtools.LoadConfig(configStore)
//	client := churchtools.NewClient(cfg, tokenProvider)
//
//	user, err := client.WhoAmI(ctx)
//	persons, err := client.ListPersons(ctx, domain.PersonFilter{})
package churchtools
