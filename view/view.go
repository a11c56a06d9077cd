// Package view computes derived, render-ready values from store
// snapshots. Everything here is a pure function: no mutation, no side
// effects, no asynchrony.
package view

import (
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/domain"
	"storefront/store"
)

// PageItems returns the products for the snapshot's current page: the
// visible set filtered once more by the active category, then sliced
// to the page window. Out-of-range pages yield an empty result.
func PageItems(cat store.CatalogSnapshot) []domain.Product {
	matching := matchingFilter(cat)
	start := (cat.Page - 1) * cat.PageSize
	if start < 0 || start >= len(matching) {
		return nil
	}
	end := start + cat.PageSize
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end]
}

// PageCount returns how many pages the matching products span.
func PageCount(cat store.CatalogSnapshot) int {
	if cat.PageSize <= 0 {
		return 0
	}
	n := len(matchingFilter(cat))
	return (n + cat.PageSize - 1) / cat.PageSize
}

// matchingFilter re-applies the category filter to the visible set, so
// a page never shows a product outside the active category even when
// the visible set was last recomputed by a search.
func matchingFilter(cat store.CatalogSnapshot) []domain.Product {
	if cat.Filter == "" || cat.Filter == store.CategoryAll {
		return cat.Visible
	}
	out := make([]domain.Product, 0, len(cat.Visible))
	for _, p := range cat.Visible {
		if p.Category == cat.Filter {
			out = append(out, p)
		}
	}
	return out
}

// CartTotal returns sum(price * quantity) * (1 - discount) as an exact
// decimal.
func CartTotal(cart store.CartSnapshot) decimal.Decimal {
	total := decimal.Zero
	for _, l := range cart.Lines {
		total = total.Add(l.LineTotal())
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(cart.Discount))
	return total.Mul(factor)
}

// StatusLine formats the catalog fetch state for display.
func StatusLine(cat store.CatalogSnapshot) string {
	switch cat.Status {
	case store.StatusLoading:
		return "Loading..."
	case store.StatusFailed:
		return "Error: " + cat.FetchError
	case store.StatusSucceeded:
		return fmt.Sprintf("%d products | filter=%s | page %d of %d",
			len(cat.Visible), cat.Filter, cat.Page, PageCount(cat))
	default:
		return "Catalog not loaded."
	}
}

// CartLineText formats one cart line the way the cart view shows it.
func CartLineText(l domain.CartLine) string {
	return fmt.Sprintf("%s x %d | $%s", l.Title, l.Quantity, l.LineTotal().StringFixed(2))
}

// TotalText formats the discounted cart total.
func TotalText(cart store.CartSnapshot) string {
	return "Total Price: $" + CartTotal(cart).StringFixed(2)
}
