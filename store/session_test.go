package store

import (
	"sync/atomic"
	"testing"

	"storefront/domain"
)

func TestSessionSubscribe(t *testing.T) {
	s := NewSession(Options{Source: &funcSource{}})

	var n atomic.Int64
	unsubscribe := s.Subscribe(func() { n.Add(1) })

	s.Cart.AddItem(ring)
	s.Wishlist.Add(shirt)
	s.Catalog.SetPage(2)
	if got := n.Load(); got != 3 {
		t.Fatalf("notifications = %d, want 3 (one per mutation in any store)", got)
	}

	unsubscribe()
	s.Cart.AddItem(ring)
	if got := n.Load(); got != 3 {
		t.Fatalf("unsubscribed callback still ran")
	}
}

func TestSessionMultipleSubscribers(t *testing.T) {
	s := NewSession(Options{Source: &funcSource{}})

	var a, b atomic.Int64
	s.Subscribe(func() { a.Add(1) })
	s.Subscribe(func() { b.Add(1) })

	s.Cart.AddItem(ring)
	if a.Load() != 1 || b.Load() != 1 {
		t.Fatalf("all subscribers must run: a=%d b=%d", a.Load(), b.Load())
	}
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession(Options{Source: &funcSource{}})
	if got := s.Catalog.Snapshot().PageSize; got != DefaultPageSize {
		t.Fatalf("page size = %d, want %d", got, DefaultPageSize)
	}
	if got := s.Wishlist.Snapshot().Capacity; got != DefaultWishlistCapacity {
		t.Fatalf("capacity = %d, want %d", got, DefaultWishlistCapacity)
	}
}

func TestMoveToCart(t *testing.T) {
	s := NewSession(Options{Source: &funcSource{}})
	p := domain.Product{ID: 9, Title: "Bracelet", Price: 12, Category: "jewelery"}
	s.Wishlist.Add(p)

	s.MoveToCart(p)

	if got := len(s.Wishlist.Snapshot().Items); got != 0 {
		t.Fatalf("wishlist items = %d, want 0 after move", got)
	}
	cart := s.Cart.Snapshot()
	if len(cart.Lines) != 1 || cart.Lines[0].ID != 9 || cart.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected cart after move: %+v", cart.Lines)
	}
}
