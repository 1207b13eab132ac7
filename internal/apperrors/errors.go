// Package apperrors defines the service-wide failure taxonomy. UseCases wrap
// these sentinels with context via fmt.Errorf("%w: ...") and the HTTP layer
// maps them to status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrInvalidArgument covers malformed input: bad sort fields, non-positive
	// quantities, values that would drive stock negative.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound covers missing categories, products and orders, including
	// dangling references supplied by the caller.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers deletions blocked by dependent rows.
	ErrConflict = errors.New("conflict")

	// ErrInsufficientStock is returned when a requested quantity exceeds the
	// product's available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrUnauthorized covers missing, malformed or expired credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
