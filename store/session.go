package store

import (
	"sync"

	"storefront/domain"
)

// Options configures a Session.
type Options struct {
	Source           domain.CatalogSource
	PageSize         int // 0 means DefaultPageSize
	WishlistCapacity int // 0 means DefaultWishlistCapacity
}

// Session composes the three stores for one shopper and owns the
// state-change notification contract. Each store is mutated only
// through its declared operations; presentation code reads snapshots
// and subscribes to change callbacks, nothing reaches into store
// internals.
type Session struct {
	Catalog  *CatalogStore
	Cart     *CartStore
	Wishlist *WishlistStore

	mu   sync.Mutex
	subs map[int]func()
	next int
}

// NewSession constructs the composed session state.
func NewSession(opts Options) *Session {
	s := &Session{subs: make(map[int]func())}
	s.Catalog = NewCatalogStore(opts.Source, opts.PageSize, s.broadcast)
	s.Cart = NewCartStore(s.broadcast)
	s.Wishlist = NewWishlistStore(opts.WishlistCapacity, s.broadcast)
	return s
}

// Subscribe registers fn to run after every committed mutation in any
// of the three stores. The returned function cancels the subscription.
func (s *Session) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// MoveToCart adds a wishlist entry to the cart and removes it from the
// wishlist, as one shopper intent.
func (s *Session) MoveToCart(product domain.Product) {
	s.Cart.AddItem(product)
	s.Wishlist.Remove(product.ID)
}

func (s *Session) broadcast() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	// run outside the lock so subscribers may read snapshots freely
	for _, fn := range fns {
		fn()
	}
}
