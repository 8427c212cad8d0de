// Package client talks to a blocks store over HTTP/JSON.
//
//	GET    /blocks  -> [Block]
//	POST   /blocks  -> Block
//	DELETE /blocks
//
// Any status outside 2xx is reported as a *StatusError. Requests are never
// retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/placement"
)

// maxErrorBody caps how much of an error response is kept for the message.
const maxErrorBody = 512

// Config holds client settings.
type Config struct {
	// BaseURL is the store root, e.g. "http://localhost:8080".
	// Requests go to BaseURL + "/blocks".
	BaseURL string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// UserAgent is sent with every request when set.
	UserAgent string

	// HTTPClient overrides the underlying client (tests, custom transports).
	HTTPClient *http.Client
}

// Client is a blocks store reached over HTTP.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// New creates a client for the store at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("client: base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("client: invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("client: unsupported scheme %q in %q", u.Scheme, cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		endpoint:   base + "/blocks",
		userAgent:  cfg.UserAgent,
		httpClient: hc,
	}, nil
}

// Endpoint returns the blocks collection URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// List fetches every block in creation order.
func (c *Client) List(ctx context.Context) ([]core.Block, error) {
	var blocks []core.Block
	if err := c.do(ctx, http.MethodGet, nil, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Create stores a block and returns the store's copy, which may carry an ID.
func (c *Client) Create(ctx context.Context, b core.Block) (core.Block, error) {
	payload := struct {
		Position core.Position `json:"position"`
		Color    core.Color    `json:"color"`
	}{b.Position, b.Color}

	var saved core.Block
	if err := c.do(ctx, http.MethodPost, payload, &saved); err != nil {
		return core.Block{}, err
	}
	return saved, nil
}

// Clear deletes every block.
func (c *Client) Clear(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, nil, nil)
}

// do sends one request to the blocks endpoint. in is encoded as the JSON body
// when non-nil; out receives the decoded response when non-nil.
func (c *Client) do(ctx context.Context, method string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			URL:    c.endpoint,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(text)),
		}
	}

	if out == nil {
		//nolint:errcheck // Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode %s response: %w", method, err)
	}
	return nil
}

var _ placement.Store = (*Client)(nil)
