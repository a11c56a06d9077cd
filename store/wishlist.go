package store

import (
	"sync"

	"storefront/domain"
)

// DefaultWishlistCapacity bounds how many products can be saved.
const DefaultWishlistCapacity = 3

const (
	// WishlistFullMessage is set when an add would exceed capacity.
	WishlistFullMessage = "Wishlist is full. Remove an item to add a new one."
	// WishlistEmptyMessage is set when removing from an empty list.
	WishlistEmptyMessage = "Wishlist is empty"
)

// WishlistSnapshot is a read-only copy of wishlist state.
type WishlistSnapshot struct {
	Items    []domain.Product
	Capacity int
	Err      string
}

// WishlistStore holds a capacity-bounded ordered list of saved
// products. Capacity violations are advisory: the error message is set
// and the items stay unchanged.
type WishlistStore struct {
	mu     sync.RWMutex
	notify func()

	items    []domain.Product
	capacity int
	errMsg   string
}

// NewWishlistStore constructs an empty WishlistStore. A non-positive
// capacity falls back to DefaultWishlistCapacity.
func NewWishlistStore(capacity int, notify func()) *WishlistStore {
	if capacity <= 0 {
		capacity = DefaultWishlistCapacity
	}
	return &WishlistStore{capacity: capacity, notify: notify}
}

// Add appends product unless the list is at capacity, in which case
// the error message is set and the items are left as they were.
func (s *WishlistStore) Add(product domain.Product) {
	s.mu.Lock()
	if len(s.items) >= s.capacity {
		s.errMsg = WishlistFullMessage
	} else {
		s.items = append(s.items, product)
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.notifyFn()
}

// Remove deletes the entry matching productID. Removing from an empty
// list sets the error message; removing an id that is not present
// leaves the list unchanged without raising an error.
func (s *WishlistStore) Remove(productID int) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.errMsg = WishlistEmptyMessage
	} else {
		kept := s.items[:0]
		for _, p := range s.items {
			if p.ID != productID {
				kept = append(kept, p)
			}
		}
		s.items = kept
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.notifyFn()
}

// Snapshot returns a copy of the current wishlist state.
func (s *WishlistStore) Snapshot() WishlistSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := WishlistSnapshot{
		Items:    make([]domain.Product, len(s.items)),
		Capacity: s.capacity,
		Err:      s.errMsg,
	}
	copy(snap.Items, s.items)
	return snap
}

func (s *WishlistStore) notifyFn() {
	if s.notify != nil {
		s.notify()
	}
}
