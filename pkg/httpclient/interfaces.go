package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Request describes a single HTTP call. Query values are encoded into the URL
// and Body, when non-nil, is sent as JSON.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	Body    any
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// An error is returned only when no response was received; non-2xx statuses are
// reported through Response.StatusCode.
type Client interface {
	Do(ctx context.Context, req Request) (Response, error)
}
