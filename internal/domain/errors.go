package domain

import "errors"

// Sentinel errors for classifying inventory failures.
// Callers wrap these so the CLI can report error categories uniformly:
//
//	return fmt.Errorf("datadog: request failed: %w: %w", domain.ErrTransport, err)
var (
	// ErrMissingConfig indicates a required setting was not provided.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrTransport indicates the request never produced an HTTP response
	// (DNS failure, refused connection, timeout).
	ErrTransport = errors.New("transport error")

	// ErrDecode indicates the response body did not have the expected shape.
	ErrDecode = errors.New("decode error")

	// ErrHTTPStatus indicates the API answered with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")
)
