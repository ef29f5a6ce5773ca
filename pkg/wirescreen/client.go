package wirescreen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/wirescreen/wirescreen-go/pkg/httpclient"
)

// Path suffixes resolved against the client host.
const (
	SearchPath         = "search/search"
	AdvancedSearchPath = "search/advancedsearch"
	OrganizationPath   = "data/organization"
	OrganizationsPath  = "data/organizations"
	PersonPath         = "data/person"
	PersonsPath        = "data/persons"
)

// Client issues requests against a single WireScreen API deployment.
// It holds no mutable state after New returns.
type Client struct {
	host      *url.URL
	token     string
	headers   map[string]string
	transport httpclient.Client
	log       Logger
}

// New validates host, resolves the token and returns a ready client. An empty
// token is looked up in WIRESCREEN_API_TOKEN. No network I/O is performed.
func New(host, token string, opts ...Option) (*Client, error) {
	cfg := newClientConfig(opts)

	base, err := parseHost(host)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(token) == "" {
		token, _ = cfg.lookupEnv(TokenEnvVar)
	}
	if strings.TrimSpace(token) == "" {
		return nil, &ConfigurationError{Field: "token", Err: ErrMissingToken}
	}

	return &Client{
		host:      base,
		token:     token,
		headers:   makeHeaders(token),
		transport: cfg.httpClient,
		log:       cfg.logger,
	}, nil
}

// Host returns the normalized base URL that request paths are resolved against.
func (c *Client) Host() string { return c.host.String() }

func parseHost(raw string) (*url.URL, error) {
	host := strings.TrimSpace(raw)
	if host == "" {
		return nil, &ConfigurationError{Field: "host", Err: ErrHostMissing}
	}
	if err := validation.Validate(host, is.RequestURL, is.URL); err != nil {
		return nil, &ConfigurationError{Field: "host", Err: fmt.Errorf("%w: %q: %v", ErrHostInvalid, host, err)}
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, &ConfigurationError{Field: "host", Err: fmt.Errorf("%w: %q: %v", ErrHostInvalid, host, err)}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &ConfigurationError{Field: "host", Err: fmt.Errorf("%w: %q is not absolute", ErrHostInvalid, host)}
	}
	return u, nil
}

func makeHeaders(token string) map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Token " + token,
	}
}

// Search runs a free-text search for companies and people.
func (c *Client) Search(ctx context.Context, params SearchParams) (any, error) {
	query := map[string]string{"query": params.Query}
	if params.NumResults != nil {
		query["num_results"] = strconv.Itoa(*params.NumResults)
	}
	return c.do(ctx, http.MethodGet, SearchPath, query, nil)
}

// AdvancedSearch searches companies with optional filters.
func (c *Client) AdvancedSearch(ctx context.Context, params AdvancedSearchParams) (any, error) {
	return c.do(ctx, http.MethodPost, AdvancedSearchPath, nil, params)
}

// GetOrganization retrieves the organization identified by uid.
func (c *Client) GetOrganization(ctx context.Context, uid uuid.UUID) (any, error) {
	return c.do(ctx, http.MethodGet, OrganizationPath, map[string]string{"uid": uid.String()}, nil)
}

// GetOrganizations retrieves several organizations in one request.
func (c *Client) GetOrganizations(ctx context.Context, uids []uuid.UUID) (any, error) {
	return c.do(ctx, http.MethodPost, OrganizationsPath, nil, newUUIDListBody(uids))
}

// GetPerson retrieves the person identified by uid.
func (c *Client) GetPerson(ctx context.Context, uid uuid.UUID) (any, error) {
	return c.do(ctx, http.MethodGet, PersonPath, map[string]string{"uid": uid.String()}, nil)
}

// GetPersons retrieves several persons in one request.
func (c *Client) GetPersons(ctx context.Context, uids []uuid.UUID) (any, error) {
	return c.do(ctx, http.MethodPost, PersonsPath, nil, newUUIDListBody(uids))
}

func newUUIDListBody(uids []uuid.UUID) uuidListBody {
	list := make([]string, 0, len(uids))
	for _, uid := range uids {
		list = append(list, uid.String())
	}
	return uuidListBody{UUIDList: list}
}

// do performs one round trip and decodes the JSON response.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body any) (any, error) {
	target := c.host.ResolveReference(&url.URL{Path: path}).String()
	meta := map[string]any{"method": method, "url": target}
	c.log.DebugObj("wirescreen request", "request", meta)

	resp, err := c.transport.Do(ctx, httpclient.Request{
		Method:  method,
		URL:     target,
		Headers: maps.Clone(c.headers),
		Query:   query,
		Body:    body,
	})
	if err != nil {
		c.log.WarnObj("wirescreen request failed", "error", err.Error())
		return nil, &NetworkError{Method: method, URL: target, Err: err}
	}

	status := resp.StatusCode()
	meta["status"] = status
	if status >= http.StatusBadRequest {
		c.log.WarnObj("wirescreen request rejected", "response", meta)
		return nil, &RequestError{Method: method, URL: target, StatusCode: status, Body: resp.Body()}
	}

	out, err := decodeBody(resp.Body())
	if err != nil {
		c.log.WarnObj("wirescreen response not json", "response", meta)
		return nil, &ResponseDecodeError{Method: method, URL: target, StatusCode: status, Body: resp.Body(), Err: err}
	}
	c.log.DebugObj("wirescreen response", "response", meta)
	return out, nil
}

// decodeBody parses exactly one JSON value, keeping numbers as json.Number.
func decodeBody(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty response body")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return out, nil
}
