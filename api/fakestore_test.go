package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/domain"
)

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":"Ring","price":19.99,"description":"d","image":"u","category":"jewelery"},
			{"id":2,"title":"Shirt","price":9.50,"description":"d","image":"u","category":"men's clothing"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	products, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].ID != 1 || products[0].Title != "Ring" || products[0].Category != "jewelery" {
		t.Fatalf("unexpected product decode: %+v", products[0])
	}
}

func TestFetchCategory(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`[{"id":3,"title":"Necklace","price":45,"category":"jewelery"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	products, err := c.FetchCategory(context.Background(), "men's clothing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if gotPath != "/products/category/men's%20clothing" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
}

func TestEmptyResultIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	products, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("empty catalog must not be an error, got %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("got %d products, want 0", len(products))
	}
}

func TestNonSuccessStatusFails(t *testing.T) {
	cases := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"rate limited", http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			_, err := c.FetchAll(context.Background())
			if !domain.IsCatalogFetchError(err) {
				t.Fatalf("expected CatalogFetchError, got %v", err)
			}
		})
	}
}

func TestTransportErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second)
	_, err := c.FetchAll(context.Background())
	if !domain.IsCatalogFetchError(err) {
		t.Fatalf("expected CatalogFetchError, got %v", err)
	}
}

func TestMalformedBodyFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.FetchAll(context.Background())
	if !domain.IsCatalogFetchError(err) {
		t.Fatalf("expected CatalogFetchError, got %v", err)
	}
}

func TestClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	if c.baseURL != DefaultBaseURL {
		t.Fatalf("baseURL = %s, want %s", c.baseURL, DefaultBaseURL)
	}
	if c.httpc.Timeout != DefaultTimeout {
		t.Fatalf("timeout = %v, want %v", c.httpc.Timeout, DefaultTimeout)
	}
}
