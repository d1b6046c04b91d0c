package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotFound maps HTTP 404 responses. Callers that treat absence as a
	// valid state (e.g. "no progress yet") check for it with errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized maps HTTP 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries the backend's failure message and status code for
// responses that are neither 404 nor auth failures.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// envelope is the platform's standard JSON response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the course-platform backend.
type Client struct {
	http *resty.Client
}

// Config holds the connection settings for a Client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// New creates a Client for the given backend.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}

	return &Client{http: rc}
}

// get performs a GET and decodes the envelope's data field into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return decode(resp, out)
}

// post performs a POST with an optional JSON body and decodes the
// envelope's data field into out when out is non-nil.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return decode(resp, out)
}

// decode maps the HTTP status and unwraps the response envelope.
func decode(resp *resty.Response, out any) error {
	var env envelope
	// The backend wraps error responses in the same envelope, so parse the
	// body before discriminating on status to surface its message.
	envErr := json.Unmarshal(resp.Body(), &env)

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code >= 400:
		return &APIError{StatusCode: code, Message: env.Message}
	}

	if envErr != nil {
		return fmt.Errorf("decode response: %w", envErr)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode(), Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
