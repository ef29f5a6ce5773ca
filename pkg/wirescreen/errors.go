package wirescreen

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrHostMissing is returned when no host is given to New.
	ErrHostMissing = errors.New("no host was provided")

	// ErrHostInvalid is returned when the host is not an absolute URL.
	ErrHostInvalid = errors.New("host is not a valid URL")

	// ErrMissingToken is returned when neither the token argument nor
	// WIRESCREEN_API_TOKEN holds a credential.
	ErrMissingToken = errors.New("no WireScreen API token provided")

	// ErrUnauthorized matches a RequestError with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches a RequestError with status 404.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited matches a RequestError with status 429.
	ErrRateLimited = errors.New("rate limit exceeded")
)

const bodySnippetLimit = 512

// ConfigurationError reports an unusable host or credential at construction time.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("wirescreen: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// RequestError is returned when the API answers with a status of 400 or above.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("wirescreen: %s %s: status %d", e.Method, e.URL, e.StatusCode)
	if snippet := readBodySnippet(e.Body); snippet != "" {
		msg += ": " + snippet
	}
	return msg
}

// Is implements errors.Is for status sentinels.
// Snippet returns the response body cut to its first 512 bytes, trimmed.
func (e *RequestError) Snippet() string { return readBodySnippet(e.Body) }

func (e *RequestError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// ResponseDecodeError is returned when a successful response body is not valid JSON.
type ResponseDecodeError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ResponseDecodeError) Error() string {
	return fmt.Sprintf("wirescreen: %s %s: decode response: %v", e.Method, e.URL, e.Err)
}

func (e *ResponseDecodeError) Unwrap() error { return e.Err }

// NetworkError is returned when no HTTP response was received.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("wirescreen: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > bodySnippetLimit {
		body = body[:bodySnippetLimit]
	}
	return strings.TrimSpace(string(body))
}
