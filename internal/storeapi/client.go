// Package storeapi is the HTTP client for the remote commerce API. Every
// business operation maps to exactly one call; there is no caching, no
// retrying and no request de-duplication here. Failure translation beyond
// decoding the backend's {message} body is left to callers.
package storeapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"storefront/pkg/logger"
)

// AnonymousUserID is the sentinel user id the API expects for anonymous
// browsing. The backend depends on this exact value.
const AnonymousUserID = -1

// Client talks to the commerce API. The base URL is resolved once at startup.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Error is a backend rejection: a non-2xx response whose body carried a
// {message}. Transport failures are returned as-is and are therefore
// distinguishable by not being an *Error.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("store api: %d %s", e.Status, e.Message)
}

// Message returns the user-facing text for err: the backend message verbatim
// for rejections, fallback for everything else (including transport failures,
// which carry no response at all).
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// do issues one request and decodes a 2xx body into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.APICall(method, path, 0, time.Since(start), err)
		return fmt.Errorf("store api request failed: %w", err)
	}
	defer resp.Body.Close()
	logger.APICall(method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			apiErr.Message = body.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
