package client

import (
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

// CatalogClient queries the external machine-catalog API for machines to
// add. It is independent of the scoring backend.
type CatalogClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewCatalog creates a catalog client.
func NewCatalog(baseURL, apiToken string) *CatalogClient {
	return &CatalogClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewCatalogWithHTTPClient creates a catalog client with a caller-supplied
// http.Client (for testing).
func NewCatalogWithHTTPClient(baseURL, apiToken string, httpClient *http.Client) *CatalogClient {
	c := NewCatalog(baseURL, apiToken)
	c.httpClient = httpClient
	return c
}

// Search queries the catalog for machines matching the query string.
func (c *CatalogClient) Search(ctx context.Context, query string) ([]model.CatalogMachine, error) {
	params := url.Values{
		"q":               []string{query},
		"include_groups":  []string{"0"},
		"include_aliases": []string{"1"},
	}
	if c.apiToken != "" {
		params.Set("api_token", c.apiToken)
	}
	u := c.baseURL + "/api/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.TransportError{Op: "catalog search", URL: u, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransportError{Op: "catalog search", URL: u, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, &model.TransportError{
			Op:     "catalog search",
			URL:    u,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	var results []model.CatalogMachine
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &model.TransportError{Op: "catalog search", URL: u, Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return results, nil
}
