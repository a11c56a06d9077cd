// Package api implements the HTTP client for the remote product catalog.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront/domain"
)

// DefaultBaseURL is the public catalog endpoint.
const DefaultBaseURL = "https://fakestoreapi.com"

// DefaultTimeout bounds a single catalog request.
const DefaultTimeout = 15 * time.Second

// Client fetches products from a fakestore-compatible catalog API.
// It is read-only: the two operations mirror the remote surface.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// compile-time assertion that Client implements domain.CatalogSource
var _ domain.CatalogSource = (*Client)(nil)

// NewClient constructs a Client. Empty baseURL falls back to
// DefaultBaseURL; non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// FetchAll returns the full catalog.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Product, error) {
	return c.get(ctx, c.baseURL+"/products")
}

// FetchCategory returns the catalog restricted to one category value.
func (c *Client) FetchCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return c.get(ctx, c.baseURL+"/products/category/"+url.PathEscape(category))
}

func (c *Client) get(ctx context.Context, u string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, domain.NewCatalogFetchError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewCatalogFetchError(resp.StatusCode, "unexpected status "+resp.Status)
	}

	// An empty array is a valid zero-product catalog, distinct from failure.
	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, domain.NewCatalogFetchError(resp.StatusCode, fmt.Sprintf("decode response: %v", err))
	}
	return products, nil
}
