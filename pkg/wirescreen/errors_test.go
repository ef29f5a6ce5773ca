package wirescreen

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestErrorMatchesStatusSentinels(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	all := []error{ErrUnauthorized, ErrNotFound, ErrRateLimited}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			err := fmt.Errorf("lookup: %w", &RequestError{StatusCode: tc.status})
			for _, sentinel := range all {
				if sentinel == tc.want {
					assert.ErrorIs(t, err, sentinel)
				} else {
					assert.NotErrorIs(t, err, sentinel)
				}
			}
		})
	}

	err := &RequestError{StatusCode: http.StatusInternalServerError}
	for _, sentinel := range all {
		assert.NotErrorIs(t, err, sentinel)
	}
}

func TestRequestErrorMessageTruncatesBody(t *testing.T) {
	body := []byte(strings.Repeat("x", 2*bodySnippetLimit))
	err := &RequestError{Method: "GET", URL: "https://api.example.com/data/person", StatusCode: 500, Body: body}

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "wirescreen: GET https://api.example.com/data/person: status 500: "))
	assert.Len(t, msg, len("wirescreen: GET https://api.example.com/data/person: status 500: ")+bodySnippetLimit)
	assert.Len(t, err.Body, 2*bodySnippetLimit)
}

func TestRequestErrorSnippet(t *testing.T) {
	long := &RequestError{StatusCode: 500, Body: []byte(strings.Repeat("y", bodySnippetLimit+10))}
	assert.Equal(t, strings.Repeat("y", bodySnippetLimit), long.Snippet())

	short := &RequestError{StatusCode: 404, Body: []byte("  {\"detail\":\"Not found.\"}\n")}
	assert.Equal(t, `{"detail":"Not found."}`, short.Snippet())

	assert.Empty(t, (&RequestError{StatusCode: 502}).Snippet())
}

func TestRequestErrorMessageWithoutBody(t *testing.T) {
	err := &RequestError{Method: "POST", URL: "https://h/search/advancedsearch", StatusCode: 502}
	assert.Equal(t, "wirescreen: POST https://h/search/advancedsearch: status 502", err.Error())
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	cause := errors.New("cause")

	assert.ErrorIs(t, &ConfigurationError{Field: "host", Err: cause}, cause)
	assert.ErrorIs(t, &ResponseDecodeError{Err: cause}, cause)
	assert.ErrorIs(t, &NetworkError{Err: cause}, cause)
	assert.Equal(t, "wirescreen: invalid token: no WireScreen API token provided",
		(&ConfigurationError{Field: "token", Err: ErrMissingToken}).Error())
}
