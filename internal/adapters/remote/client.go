package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every request. A request that exceeds it fails with
// the same network classification as connectivity loss.
const DefaultTimeout = 10 * time.Second

// Client is an HTTP client bound to one API base URL. A bearer token, once
// installed, rides on every subsequent request until cleared. The token is
// the only mutable field; the session manager is its only writer.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a Client for the given base URL.
// PRE: baseURL is a reachable API root; trailing slashes are tolerated
// POST: Returns a ready-to-use client with the given timeout applied
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer credential for all subsequent requests.
// An empty token clears it. Requests already in flight keep the header
// they started with.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently installed bearer credential.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one JSON request/response round trip. body and out may be nil.
// Non-2xx responses become *APIError; transport failures and timeouts wrap
// ErrNetwork.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.New().String()
	slog.Info("remote_request", "id", reqID, "method", method, "url", fullURL)

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("remote_error", "id", reqID, "method", method, "url", fullURL, "error", err)
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("remote_error", "id", reqID, "method", method, "url", fullURL, "error", err)
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Detail: extractDetail(raw)}
		slog.Info("remote_error", "id", reqID, "method", method, "url", fullURL,
			"status", resp.StatusCode, "detail", apiErr.Detail)
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// extractDetail pulls the backend's detail string out of an error body.
// The message is surfaced verbatim to the user.
func extractDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}
