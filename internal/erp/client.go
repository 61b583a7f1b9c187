// Package erp is the HTTP client for the sales ERP. One Client instance
// is shared by the dashboard and the CLI subcommands; the bearer token is
// read per-request through a TokenProvider so the client survives login
// and logout.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"salesdash/internal/logging"
)

// DefaultBaseURL is the hosted ERP instance.
const DefaultBaseURL = "https://erp-r0hx.onrender.com/api"

const defaultTimeout = 15 * time.Second

// TokenProvider yields the current bearer token, or "" when logged out.
type TokenProvider func() string

// Client talks to the ERP REST API.
type Client struct {
	baseURL string
	token   TokenProvider
	http    *http.Client
}

// Option adjusts a Client at construction.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client (tests mostly).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout overrides the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New builds a client for baseURL. An empty baseURL means DefaultBaseURL;
// a nil token provider means unauthenticated.
func New(baseURL string, token TokenProvider, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if token == nil {
		token = func() string { return "" }
	}
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one request. body (if non-nil) is marshalled as JSON; out (if
// non-nil) receives the decoded response body. Non-2xx answers become an
// *APIError carrying the server's message when the body had one.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.APIError("%s %s failed: %v", method, path, err)
		return &APIError{Op: op}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.APIError("%s %s read body: %v", method, path, err)
		return &APIError{Op: op, Status: resp.StatusCode}
	}
	logging.APIDebug("%s %s -> %d (%s, %d bytes)",
		method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Op: op, Status: resp.StatusCode, Message: remoteMessage(raw)}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

// remoteMessage pulls the "message" field out of an error body, tolerating
// bodies that are not JSON at all.
func remoteMessage(raw []byte) string {
	var m apiMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	return m.Message
}
