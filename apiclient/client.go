// Package apiclient wraps the HTTP client that will talk to the real
// backend once one exists. It attaches the persisted bearer token to
// every request, clears the session on 401 and normalizes transport
// errors, mirroring what the mock API never has to deal with.
package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

// ErrNoResponse is returned when the request never reached the server.
var ErrNoResponse = errors.New("no response from server")

// ErrUnauthorized is returned on HTTP 401, after the persisted session
// has been cleared.
var ErrUnauthorized = errors.New("unauthorized")

// Client is a thin JSON client bound to a base URL and a session store.
type Client struct {
	baseURL string
	http    *http.Client
	session storage.Store

	// onUnauthorized is the navigation seam: the UI layer registers a
	// redirect-to-login here.
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUnauthorizedHandler registers a callback invoked after a 401 has
// cleared the session.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New returns a client rooted at baseURL, reading the bearer token from
// the given session store.
func New(baseURL string, session storage.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends a JSON request and decodes the response body into out when
// out is non-nil. Error bodies are unwrapped through their "message"
// field.
func (c *Client) Do(method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if raw, ok, err := c.session.Load(storage.KeyAuthToken); err == nil && ok && len(raw) > 0 {
		req.Header.Set("Authorization", "Bearer "+string(raw))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrNoResponse
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Delete(storage.KeyAuthToken)
		c.session.Delete(storage.KeyAuthUser)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Message != "" {
			return errors.New(errBody.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Get issues a GET request.
func (c *Client) Get(path string, out any) error {
	return c.Do(http.MethodGet, path, nil, out)
}

// Post issues a POST request.
func (c *Client) Post(path string, body, out any) error {
	return c.Do(http.MethodPost, path, body, out)
}
