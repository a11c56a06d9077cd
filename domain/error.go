// Package domain defines error types for the storefront.
package domain

import (
	"errors"
	"fmt"
)

// CatalogFetchError is returned when the remote catalog source fails,
// either at the transport level (StatusCode == 0) or with a
// non-success HTTP status.
type CatalogFetchError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface for CatalogFetchError
func (e *CatalogFetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("catalog fetch failed: %s", e.Reason)
	}
	return fmt.Sprintf("catalog fetch failed: status=%d, reason=%s", e.StatusCode, e.Reason)
}

// Is allows proper error type checking with errors.Is()
func (e *CatalogFetchError) Is(target error) bool {
	_, ok := target.(*CatalogFetchError)
	return ok
}

// ProductNotFoundError is returned when a product with the given ID is
// not present in the fetched catalog.
type ProductNotFoundError struct {
	ProductID int
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%d", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// Helper functions for creating errors with context

// NewCatalogFetchError creates a new CatalogFetchError
func NewCatalogFetchError(statusCode int, reason string) error {
	return &CatalogFetchError{StatusCode: statusCode, Reason: reason}
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(productID int) error {
	return &ProductNotFoundError{ProductID: productID}
}

// Type assertion helpers for use with errors.As()

// IsCatalogFetchError checks if an error is a CatalogFetchError
func IsCatalogFetchError(err error) bool {
	var cfe *CatalogFetchError
	return errors.As(err, &cfe)
}

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}
