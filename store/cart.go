package store

import (
	"fmt"
	"sync"

	"storefront/domain"
)

// PromoRejectedMessage is shown for an unrecognized code or an apply
// attempt while another promo is active.
const PromoRejectedMessage = "Invalid promo code or promo code already applied."

// CartSnapshot is a read-only copy of cart state.
type CartSnapshot struct {
	Lines        []domain.CartLine
	Err          string
	Discount     float64
	PromoCode    string
	EnteredCode  string
	PromoMessage string
}

// Empty reports whether the cart holds no lines.
func (c CartSnapshot) Empty() bool { return len(c.Lines) == 0 }

// CartStore holds the cart lines and promo state. One line exists per
// distinct product id, and the active promo code is set exactly when
// the discount fraction is positive.
type CartStore struct {
	mu     sync.RWMutex
	notify func()

	lines        []domain.CartLine
	errMsg       string
	discount     float64
	promoCode    string
	enteredCode  string
	promoMessage string
}

// NewCartStore constructs an empty CartStore. notify, if non-nil, runs
// after every committed mutation.
func NewCartStore(notify func()) *CartStore {
	return &CartStore{notify: notify}
}

// AddItem merges product into the cart: an existing line's quantity is
// incremented, otherwise a new line with quantity 1 is appended. Any
// store-level error is cleared.
func (s *CartStore) AddItem(product domain.Product) {
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.CartLine{Product: product, Quantity: 1})
	}
	s.errMsg = ""
	s.mu.Unlock()
	s.notifyFn()
}

// RemoveItem deletes the line for productID if present; removing an
// absent id is a no-op. When the cart empties as a result, the promo
// discount and code are reset. The promo message is cleared either way.
func (s *CartStore) RemoveItem(productID int) {
	s.mu.Lock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	if len(s.lines) == 0 {
		s.discount = 0
		s.promoCode = ""
	}
	s.promoMessage = ""
	s.errMsg = ""
	s.mu.Unlock()
	s.notifyFn()
}

// SetQuantity sets the quantity of an existing line. Requests for an
// absent id or a non-positive quantity are silently ignored and the
// prior quantity is retained.
func (s *CartStore) SetQuantity(productID, quantity int) {
	s.mu.Lock()
	if quantity > 0 {
		for i := range s.lines {
			if s.lines[i].ID == productID {
				s.lines[i].Quantity = quantity
				break
			}
		}
	}
	s.errMsg = ""
	s.mu.Unlock()
	s.notifyFn()
}

// ApplyPromo activates code with the given discount fraction. At most
// one promo may be active at a time: while one is active the call is
// rejected with a message, the entered code is cleared, and the active
// code and discount stay untouched.
func (s *CartStore) ApplyPromo(code string, fraction float64) {
	s.mu.Lock()
	if s.promoCode != "" {
		s.promoMessage = PromoRejectedMessage
		s.enteredCode = ""
	} else {
		s.discount = fraction
		s.promoCode = code
		s.promoMessage = fmt.Sprintf("Promo Code %s applied!", code)
	}
	s.mu.Unlock()
	s.notifyFn()
}

// RejectPromo records a failed promo attempt (an unrecognized code)
// and clears the entered code to prompt re-entry.
func (s *CartStore) RejectPromo() {
	s.mu.Lock()
	s.promoMessage = PromoRejectedMessage
	s.enteredCode = ""
	s.mu.Unlock()
	s.notifyFn()
}

// RemovePromo clears the active code, discount, entered text, and
// message unconditionally.
func (s *CartStore) RemovePromo() {
	s.mu.Lock()
	s.discount = 0
	s.promoCode = ""
	s.enteredCode = ""
	s.promoMessage = ""
	s.mu.Unlock()
	s.notifyFn()
}

// SetEnteredCode records the shopper's promo input field.
func (s *CartStore) SetEnteredCode(text string) {
	s.mu.Lock()
	s.enteredCode = text
	s.mu.Unlock()
	s.notifyFn()
}

// Snapshot returns a copy of the current cart state.
func (s *CartStore) Snapshot() CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := CartSnapshot{
		Lines:        make([]domain.CartLine, len(s.lines)),
		Err:          s.errMsg,
		Discount:     s.discount,
		PromoCode:    s.promoCode,
		EnteredCode:  s.enteredCode,
		PromoMessage: s.promoMessage,
	}
	copy(snap.Lines, s.lines)
	return snap
}

func (s *CartStore) notifyFn() {
	if s.notify != nil {
		s.notify()
	}
}
