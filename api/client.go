// Package api is the HTTP/JSON client for the portfolio backend.
//
// It consumes, but does not define, the backend's REST contract: every method
// is a direct pass-through of one endpoint, decoded into the minimal fields
// the rest of the application actually reads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotAuthenticated is returned before any request is attempted when an
// endpoint requires a bearer token and no valid one is available. Callers
// present a sign-in prompt instead of a transport error.
var ErrNotAuthenticated = errors.New("not authenticated: run 'fv login' first")

// TokenSource provides the bearer token for authenticated requests.
type TokenSource interface {
	// Token returns a currently usable bearer token, or an error when none
	// is available (missing or expired).
	Token() (string, error)
}

// Error is a non-2xx backend response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend replied %d", e.Status)
	}
	return fmt.Sprintf("backend replied %d: %s", e.Status, e.Message)
}

// Client calls the portfolio backend at a configured base URL.
//
// The zero value is not usable; create one with New. The client is safe for
// concurrent use: it holds no mutable state beyond the http.Client.
type Client struct {
	base   *url.URL
	tokens TokenSource
	http   *http.Client
	log    *slog.Logger
}

// New returns a client for the backend at baseURL. tokens may be nil for a
// client that can only reach unauthenticated endpoints.
func New(baseURL string, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: need scheme and host", baseURL)
	}
	return &Client{
		base:   u,
		tokens: tokens,
		http:   newDailyCachingClient(),
		log:    slog.Default().With("component", "api"),
	}, nil
}

// WithHTTPClient replaces the underlying http.Client (tests, custom transport).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// endpoint builds the absolute URL for a backend path.
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// bearer returns the Authorization header value, or ErrNotAuthenticated when
// the token source has no usable token. The check happens before the request
// so an unauthenticated client never hits the network.
func (c *Client) bearer() (string, error) {
	if c.tokens == nil {
		return "", ErrNotAuthenticated
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	if tok == "" {
		return "", ErrNotAuthenticated
	}
	return "Bearer " + tok, nil
}

// getJSON performs a GET and unmarshals the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, auth bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return err
	}
	return c.do(req, auth, out)
}

// postJSON performs a POST with a JSON body and unmarshals the response into out.
func (c *Client) postJSON(ctx context.Context, path string, query url.Values, auth bool, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, query), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, auth, out)
}

// deleteJSON performs a DELETE and unmarshals the response into out.
func (c *Client) deleteJSON(ctx context.Context, path string, auth bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(path, nil), nil)
	if err != nil {
		return err
	}
	return c.do(req, auth, out)
}

func (c *Client) do(req *http.Request, auth bool, out any) error {
	if auth {
		header, err := c.bearer()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", header)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read %s %s response: %w", req.Method, req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("backend error", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
		return &Error{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cannot decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// errorMessage extracts the backend's {"error": ...} message, if any.
func errorMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Error
}
