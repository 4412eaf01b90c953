// Package api is the typed HTTP client for the HelpBridge backend.
//
// All state lives on the backend; this client translates UI actions into
// authenticated REST calls and never computes status transitions itself.
// Every non-2xx response becomes an *APIError whose message is taken from
// the response body when parseable.
package api

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

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single backend call when the caller's context
// carries no earlier deadline.
const DefaultTimeout = 10 * time.Second

// Client calls the HelpBridge backend API.
// It is stateless and safe for concurrent use; the bearer token is passed
// per call because it belongs to the request's session, not to the client.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a backend API client. baseURL is the backend origin
// (e.g. "https://api.helpbridge.org") without a trailing slash.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsForbidden reports whether err is a backend 401/403 response.
func IsForbidden(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusForbidden || apiErr.Status == http.StatusUnauthorized
}

// errorBody is the shape backend error payloads usually take. The backend
// is inconsistent about which field it populates, so all three are read.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Title   string `json:"title"`
}

// newAPIError extracts a human-readable message from a failed response,
// falling back to the raw body and then to a generic string.
func newAPIError(resp *http.Response, raw []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		for _, msg := range []string{eb.Message, eb.Error, eb.Title} {
			if msg != "" {
				return &APIError{Status: resp.StatusCode, Message: msg}
			}
		}
	}
	if trimmed := strings.TrimSpace(string(raw)); trimmed != "" && !strings.HasPrefix(trimmed, "<") {
		return &APIError{Status: resp.StatusCode, Message: trimmed}
	}
	return &APIError{Status: resp.StatusCode, Message: "request failed"}
}

// do performs a backend call. A bearer token is attached when non-empty,
// body (if any) is sent as JSON, and a 2xx response body is decoded into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp, raw)
		c.log.Debug("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode backend response for %s: %w", path, err)
		}
	}
	return nil
}

// getText performs a GET and returns the raw response body. A few backend
// endpoints reply with plain text instead of JSON.
func (c *Client) getText(ctx context.Context, path, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call backend GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read backend response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newAPIError(resp, raw)
	}
	return string(raw), nil
}

// get is a convenience wrapper around do for GET calls.
func (c *Client) get(ctx context.Context, path, token string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, token, query, nil, out)
}

// post is a convenience wrapper around do for POST calls.
func (c *Client) post(ctx context.Context, path, token string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, query, body, out)
}

// delete is a convenience wrapper around do for DELETE calls.
func (c *Client) delete(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, out)
}
