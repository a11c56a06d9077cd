// Package store provides the in-memory state containers for one
// shopper session: catalog, cart, and wishlist.
package store

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"storefront/domain"
)

// FetchStatus is the lifecycle state of a catalog retrieval.
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusLoading   FetchStatus = "loading"
	StatusSucceeded FetchStatus = "succeeded"
	StatusFailed    FetchStatus = "failed"
)

// CategoryAll selects every product regardless of category.
const CategoryAll = "all"

// DefaultPageSize is the number of products shown per page.
const DefaultPageSize = 6

// CatalogSnapshot is a read-only copy of catalog state. Slices are
// copied, so callers may hold a snapshot across later mutations.
type CatalogSnapshot struct {
	All        []domain.Product
	Visible    []domain.Product
	Filter     string
	Search     string
	Page       int
	PageSize   int
	TotalPages int
	Status     FetchStatus
	FetchError string
}

// CatalogStore holds the fetched products, the active category filter
// and search text, the pagination cursor, and the fetch lifecycle.
// Visible is always recomputed from the other fields, never mutated
// independently.
type CatalogStore struct {
	mu     sync.RWMutex
	source domain.CatalogSource
	notify func()

	all        []domain.Product
	visible    []domain.Product
	filter     string
	search     string
	page       int
	pageSize   int
	totalPages int
	status     FetchStatus
	fetchErr   string

	// lastReq tags each fetch with a monotonic id; a response whose id
	// is no longer the latest issued is discarded instead of clobbering
	// fresher state.
	lastReq uint64
}

// NewCatalogStore constructs an idle CatalogStore. notify, if non-nil,
// runs after every committed mutation (outside the store lock).
func NewCatalogStore(source domain.CatalogSource, pageSize int, notify func()) *CatalogStore {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CatalogStore{
		source:   source,
		notify:   notify,
		filter:   CategoryAll,
		page:     1,
		pageSize: pageSize,
		status:   StatusIdle,
	}
}

// Fetch requests the full catalog. It does not block; progress is
// observable through the snapshot's Status field.
func (s *CatalogStore) Fetch(ctx context.Context) {
	id := s.begin()
	go func() {
		start := time.Now()
		products, err := s.source.FetchAll(ctx)
		s.resolve(id, products, err)
		slog.Debug("catalog fetch resolved",
			"request_id", id,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}()
}

// FetchCategory requests the catalog restricted to one category. The
// result replaces the working set; it is not merged with a prior full
// fetch.
func (s *CatalogStore) FetchCategory(ctx context.Context, category string) {
	id := s.begin()
	go func() {
		start := time.Now()
		products, err := s.source.FetchCategory(ctx, category)
		s.resolve(id, products, err)
		slog.Debug("catalog fetch resolved",
			"request_id", id,
			"category", category,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}()
}

func (s *CatalogStore) begin() uint64 {
	s.mu.Lock()
	s.lastReq++
	id := s.lastReq
	s.status = StatusLoading
	s.mu.Unlock()
	s.notifyFn()
	return id
}

func (s *CatalogStore) resolve(id uint64, products []domain.Product, err error) {
	s.mu.Lock()
	if id != s.lastReq {
		// a newer fetch has been issued since; this result is stale
		s.mu.Unlock()
		slog.Debug("stale catalog fetch discarded", "request_id", id)
		return
	}
	if err != nil {
		// prior products stay untouched on failure
		s.status = StatusFailed
		s.fetchErr = err.Error()
		s.mu.Unlock()
		s.notifyFn()
		return
	}
	s.status = StatusSucceeded
	s.fetchErr = ""
	s.all = products
	s.visible = products
	s.totalPages = int(math.Ceil(float64(len(products)) / float64(s.pageSize)))
	s.mu.Unlock()
	s.notifyFn()
}

// SetFilter activates a category filter ("all" selects everything),
// recomputes the visible set, and resets pagination to the first page.
func (s *CatalogStore) SetFilter(category string) {
	s.mu.Lock()
	s.filter = category
	if category == CategoryAll {
		s.visible = s.all
	} else {
		visible := make([]domain.Product, 0, len(s.all))
		for _, p := range s.all {
			if p.Category == category {
				visible = append(visible, p)
			}
		}
		s.visible = visible
	}
	s.page = 1
	s.mu.Unlock()
	s.notifyFn()
}

// SetSearch recomputes the visible set as the case-insensitive title
// substring match over all products and resets to the first page.
// Callers are expected to quiet rapid input before invoking this; the
// store itself does no debouncing.
func (s *CatalogStore) SetSearch(text string) {
	s.mu.Lock()
	s.search = text
	needle := strings.ToLower(text)
	visible := make([]domain.Product, 0, len(s.all))
	for _, p := range s.all {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			visible = append(visible, p)
		}
	}
	s.visible = visible
	s.page = 1
	s.mu.Unlock()
	s.notifyFn()
}

// SetPage moves the pagination cursor to n verbatim. Bounds are not
// validated; an out-of-range page yields an empty visible slice.
func (s *CatalogStore) SetPage(n int) {
	s.mu.Lock()
	s.page = n
	s.mu.Unlock()
	s.notifyFn()
}

// Snapshot returns a copy of the current catalog state.
func (s *CatalogStore) Snapshot() CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := CatalogSnapshot{
		All:        make([]domain.Product, len(s.all)),
		Visible:    make([]domain.Product, len(s.visible)),
		Filter:     s.filter,
		Search:     s.search,
		Page:       s.page,
		PageSize:   s.pageSize,
		TotalPages: s.totalPages,
		Status:     s.status,
		FetchError: s.fetchErr,
	}
	copy(snap.All, s.all)
	copy(snap.Visible, s.visible)
	return snap
}

func (s *CatalogStore) notifyFn() {
	if s.notify != nil {
		s.notify()
	}
}
