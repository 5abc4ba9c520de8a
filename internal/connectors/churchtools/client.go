package churchtools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

const (
	// TokenType is the authorization scheme ChurchTools expects.
	TokenType = "Login"

	// HeaderCSRF carries the CSRF token on AJAX and file requests.
	HeaderCSRF = "CSRF-Token"

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 4096
)

// Verify interface compliance.
var (
	_ driven.DirectoryClient = (*Client)(nil)
	_ driven.SongClient      = (*Client)(nil)
	_ driven.FileClient      = (*Client)(nil)
)

// Client talks to one ChurchTools instance.
type Client struct {
	cfg           Config
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter

	mu   sync.Mutex
	http *http.Client
	csrf string
}

// NewClient creates a client that obtains its login token lazily from the
// token provider.
func NewClient(cfg Config, tokenProvider driven.TokenProvider) *Client {
	return &Client{
		cfg:           cfg,
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// NewClientWithHTTPClient creates a client with a preconfigured http.Client.
// The http.Client is responsible for authentication.
func NewClientWithHTTPClient(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		cfg:         cfg,
		http:        httpClient,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// NewLoginTransport wraps base so that every request carries
// "Authorization: Login <token>".
func NewLoginTransport(token string, base http.RoundTripper) http.RoundTripper {
	return &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   TokenType,
		}),
		Base: base,
	}
}

// BaseURL returns the instance URL the client talks to.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// ensureClient initializes the HTTP client if not already done.
// This is called lazily so the token is only read when needed.
func (c *Client) ensureClient(ctx context.Context) (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.http != nil {
		return c.http, nil
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	if c.tokenProvider == nil {
		return nil, domain.ErrAuthRequired
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.http = &http.Client{
		Transport: NewLoginTransport(token, http.DefaultTransport),
		Timeout:   timeout,
	}
	return c.http, nil
}

// request describes one API call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	csrf        bool
}

// resolve turns an API path or an absolute URL into a request URL.
func (c *Client) resolve(path string, query url.Values) (string, error) {
	raw := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if c.cfg.BaseURL == "" {
			return "", ErrNoDomain
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		raw = c.cfg.BaseURL + path
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// do executes a request. Non-2xx responses are returned as errors and the
// caller owns the body of a successful response.
// A 429 is retried once after the announced backoff.
func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	hc, err := c.ensureClient(ctx)
	if err != nil {
		return nil, err
	}

	target, err := c.resolve(r.path, r.query)
	if err != nil {
		return nil, err
	}

	var csrf string
	if r.csrf {
		csrf, err = c.csrfToken(ctx)
		if err != nil {
			return nil, err
		}
	}

	for attempt := 0; ; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		var body io.Reader
		if r.body != nil {
			body = bytes.NewReader(r.body)
		}
		req, err := http.NewRequestWithContext(ctx, r.method, target, body)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if r.contentType != "" {
			req.Header.Set("Content-Type", r.contentType)
		}
		if csrf != "" {
			req.Header.Set(HeaderCSRF, csrf)
		}

		logger.Debug("%s %s", r.method, target)
		resp, err := hc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAt := c.rateLimiter.RecordRateLimit(resp)
			drain(resp)
			if attempt == 0 {
				logger.Warn("Rate limited by server, retrying at %s", retryAt.Format("15:04:05"))
				continue
			}
			return nil, errors.Join(&RateLimitError{RetryAt: retryAt, URL: target}, domain.ErrRateLimited)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, checkResponse(resp, target)
		}
		return resp, nil
	}
}

// checkResponse converts a failed response into an APIError and closes it.
func checkResponse(resp *http.Response, target string) error {
	defer resp.Body.Close()
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := strings.TrimSpace(string(raw))
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
		message = payload.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: message, URL: target}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errors.Join(apiErr, domain.ErrAuthInvalid)
	case http.StatusNotFound:
		return errors.Join(apiErr, domain.ErrNotFound)
	}
	return apiErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// doJSON executes a request and decodes the JSON response into out.
// A nil out discards the body.
func (c *Client) doJSON(ctx context.Context, r request, out any) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnexpectedResponse, r.path, err)
	}
	return nil
}

// sendJSON marshals payload as the request body.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return c.doJSON(ctx, request{
		method:      method,
		path:        path,
		body:        body,
		contentType: "application/json",
	}, out)
}

// csrfToken returns the cached CSRF token, fetching it on first use.
func (c *Client) csrfToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.csrf
	c.mu.Unlock()
	if token != "" {
		return token, nil
	}

	var env envelope[string]
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/api/csrftoken"}, &env); err != nil {
		return "", fmt.Errorf("get csrf token: %w", err)
	}
	if env.Data == "" {
		return "", fmt.Errorf("%w: empty csrf token", ErrUnexpectedResponse)
	}

	c.mu.Lock()
	c.csrf = env.Data
	c.mu.Unlock()
	logger.Debug("CSRF token acquired")
	return env.Data, nil
}

// ajaxResponse is the legacy AJAX reply envelope.
type ajaxResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ajax posts a form to a legacy churchservice function.
func (c *Client) ajax(ctx context.Context, fn string, form url.Values) (json.RawMessage, error) {
	if form == nil {
		form = url.Values{}
	}
	var resp ajaxResponse
	err := c.doJSON(ctx, request{
		method:      http.MethodPost,
		path:        "/",
		query:       url.Values{"q": {"churchservice/ajax"}, "func": {fn}},
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		csrf:        true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("ajax %s: %w", fn, err)
	}
	if resp.Status != "" && resp.Status != "success" {
		msg := resp.Message
		if msg == "" {
			msg = strings.Trim(string(resp.Data), `"`)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrAjaxFailed, fn, msg)
	}
	return resp.Data, nil
}

// envelope is the standard REST response wrapper.
type envelope[T any] struct {
	Data T     `json:"data"`
	Meta *meta `json:"meta,omitempty"`
}

type meta struct {
	Pagination *pagination `json:"pagination,omitempty"`
}

type pagination struct {
	Total    int `json:"total"`
	Limit    int `json:"limit"`
	Current  int `json:"current"`
	LastPage int `json:"lastPage"`
}

// next returns the page to request after this response, or 0 when done.
func (e *envelope[T]) next() int {
	if e.Meta == nil || e.Meta.Pagination == nil {
		return 0
	}
	p := e.Meta.Pagination
	if p.Current >= p.LastPage {
		return 0
	}
	return p.Current + 1
}

// getData fetches a single enveloped object.
func getData[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var env envelope[T]
	err := c.doJSON(ctx, request{method: http.MethodGet, path: path, query: query}, &env)
	return env.Data, err
}

// listAll fetches every page of a paginated list endpoint.
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var all []T
	page := 0

	for {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		q := url.Values{}
		for key, values := range query {
			q[key] = append([]string(nil), values...)
		}
		if page > 0 {
			q.Set("page", strconv.Itoa(page))
		}

		var env envelope[[]T]
		if err := c.doJSON(ctx, request{method: http.MethodGet, path: path, query: q}, &env); err != nil {
			return all, err
		}
		all = append(all, env.Data...)

		page = env.next()
		if page == 0 {
			return all, nil
		}
		logger.Debug("%s: page %d of %d", path, page, env.Meta.Pagination.LastPage)
	}
}
