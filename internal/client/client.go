package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aixtraball/pinadmin/internal/model"
)

// Client is an HTTP client for the pinball-scoring backend. It performs no
// retries; a failed call surfaces a *model.TransportError to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new backend client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client
// (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	c.httpClient = httpClient
	return c
}

// BaseURL returns the backend base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorResponse is the backend's error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs an HTTP request against the backend. op names the operation
// for error reporting, query may be nil, body and result may be nil.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &model.TransportError{Op: op, URL: u, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &model.TransportError{Op: op, URL: u, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return &model.TransportError{
				Op:     op,
				URL:    u,
				Status: resp.StatusCode,
				Err:    fmt.Errorf("%s (%s)", errResp.Error.Message, errResp.Error.Code),
			}
		}
		return &model.TransportError{
			Op:     op,
			URL:    u,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(respBody))),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &model.TransportError{Op: op, URL: u, Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
		}
	}

	return nil
}

// scopeQuery builds the tournament_name query for a scope. An empty scope
// yields nil, leaving the backend to apply its active tournament.
func scopeQuery(scope model.Scope) url.Values {
	if scope == "" {
		return nil
	}
	return url.Values{"tournament_name": []string{string(scope)}}
}
