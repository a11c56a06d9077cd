// Package domain defines core business types and interfaces.
package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry as returned by the remote source.
// Products are immutable once fetched; the cart and wishlist reference
// them but never modify them.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// PriceDecimal returns the price as an exact decimal for money math.
func (p Product) PriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(p.Price)
}

// CartLine aggregates one product in the cart with its quantity.
// Quantity is always positive; the cart keeps one line per distinct
// product id.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price * quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.PriceDecimal().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PromoTable maps recognized promo codes to discount fractions in (0,1].
type PromoTable map[string]float64

// DefaultPromoTable returns the built-in code set.
func DefaultPromoTable() PromoTable {
	return PromoTable{
		"SAVE10": 0.10,
		"SAVE20": 0.20,
		"FREE5":  0.05,
	}
}

// Lookup resolves code to its discount fraction.
func (t PromoTable) Lookup(code string) (float64, bool) {
	f, ok := t[code]
	return f, ok
}

// CatalogSource is the remote read-only product catalog. An empty
// result is a successful fetch of zero products; failure is always an
// error, never an empty slice.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]Product, error)
	FetchCategory(ctx context.Context, category string) ([]Product, error)
}
