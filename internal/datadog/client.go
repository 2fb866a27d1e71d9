package datadog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nathanbeddoewebdev/envaudit/internal/domain"
	"nathanbeddoewebdev/envaudit/internal/util"

	"github.com/rs/zerolog"
)

const (
	datadogBaseURL = "https://api.datadoghq.com/api/v1/"
	datadogTimeout = 30 * time.Second

	// maxErrorBody caps how much of a failed response is read for diagnostics.
	maxErrorBody = 64 << 10
)

// ErrInvalidHost is returned by HostTags when the host cannot be used as a
// URL path segment.
var ErrInvalidHost = errors.New("datadog: invalid host name")

// Client is a read-only client for the Datadog v1 inventory endpoints.
// It authenticates by sending api_key and application_key as query
// parameters on every request.
type Client struct {
	apiKey  string
	appKey  string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. The URL must end in a slash.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Client with the given API and application keys.
// It performs no I/O.
func NewClient(apiKey, appKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		appKey:  appKey,
		baseURL: datadogBaseURL,
		client:  &http.Client{Timeout: datadogTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- HTTP helpers ---

// getJSON performs an authenticated GET of path (relative to the base URL)
// with the given extra query parameters and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("datadog: failed to build url for %q: %w", path, err)
	}

	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("api_key", c.apiKey)
	q.Set("application_key", c.appKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("datadog: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error embeds the full URL, which carries the keys.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("datadog: GET %s failed: %w: %w", u.Path, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", http.MethodGet).
		Str("path", u.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("datadog request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(u.Path, resp)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("datadog: failed to decode %s response: %w: %w", u.Path, domain.ErrDecode, err)
	}
	// The body must hold exactly one JSON value.
	if tok, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected %v after top-level value", tok)
		}
		return fmt.Errorf("datadog: failed to decode %s response: %w: trailing data: %w", u.Path, domain.ErrDecode, err)
	}

	return nil
}

// ddErrorBody is the error shape returned by the Datadog API.
type ddErrorBody struct {
	Errors []string `json:"errors"`
}

// statusError maps a non-2xx response to domain sentinels, folding in the
// API's error messages when the body carries them.
func statusError(path string, resp *http.Response) error {
	detail := http.StatusText(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		detail = fmt.Sprintf("%s (reading body: %v)", detail, err)
	} else {
		var parsed ddErrorBody
		if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
			detail = strings.Join(parsed.Errors, "; ")
		}
	}

	base := fmt.Errorf("%w: %d", domain.ErrHTTPStatus, resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("datadog: GET %s: %w: %w: %s", path, base, domain.ErrUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("datadog: GET %s: %w: %w: %s", path, base, domain.ErrNotFound, detail)
	case http.StatusTooManyRequests:
		return fmt.Errorf("datadog: GET %s: %w: %w: %s", path, base, domain.ErrRateLimited, detail)
	}

	return fmt.Errorf("datadog: GET %s: %w: %s", path, base, detail)
}

// missingField reports a response that decoded as JSON but lacks the
// expected envelope key.
func missingField(path, field string) error {
	return fmt.Errorf("datadog: %s response has no %q field: %w", path, field, domain.ErrDecode)
}

// --- Endpoints ---

// Search runs a free-text search over hosts and metrics. An empty query is
// sent as q= and matches everything.
func (c *Client) Search(ctx context.Context, query string) (*SearchResults, error) {
	var out searchResponse
	if err := c.getJSON(ctx, "search", url.Values{"q": {query}}, &out); err != nil {
		return nil, err
	}
	switch {
	case out.Results == nil:
		return nil, missingField("search", "results")
	case out.Results.Metrics == nil:
		return nil, missingField("search", "results.metrics")
	case out.Results.Hosts == nil:
		return nil, missingField("search", "results.hosts")
	}
	return &SearchResults{
		Metrics: *out.Results.Metrics,
		Hosts:   *out.Results.Hosts,
	}, nil
}

// ListHostTags returns the tags of every host, keyed by host name.
func (c *Client) ListHostTags(ctx context.Context) (map[string][]string, error) {
	var out hostTagsResponse
	if err := c.getJSON(ctx, "tags/hosts", nil, &out); err != nil {
		return nil, err
	}
	if out.Tags == nil {
		return nil, missingField("tags/hosts", "tags")
	}
	return out.Tags, nil
}

// HostTags returns the tags of a single host. The host is appended to the
// request path unescaped, so it must be a valid path segment.
func (c *Client) HostTags(ctx context.Context, host string) ([]string, error) {
	if err := util.ValidatePathSegment(host); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHost, err)
	}

	path := "tags/hosts/" + host
	var out singleHostTagsResponse
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	if out.Tags == nil {
		return nil, missingField(path, "tags")
	}
	return out.Tags, nil
}
