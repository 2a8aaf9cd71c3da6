package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrBrandNotFound   = fmt.Errorf("%w: brand", ErrNotFound)
	ErrDatasetNotFound = fmt.Errorf("%w: dataset", ErrNotFound)

	// Generation input errors
	ErrNoBrands     = errors.New("brand list is empty")
	ErrNegativeDays = errors.New("day count is negative")

	// Catalog errors
	ErrBadWeights      = errors.New("weight vector does not sum to 1")
	ErrMissingWeights  = errors.New("no category weights configured for brand")
	ErrEmptyCatalog    = errors.New("catalog has no entries")
	ErrUnknownCategory = errors.New("unknown category")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewWeightError(brand string, sum float64) error {
	return fmt.Errorf("%w: brand %s sums to %.4f", ErrBadWeights, brand, sum)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrNoBrands) ||
		errors.Is(err, ErrNegativeDays)
}

func IsCatalogError(err error) bool {
	return errors.Is(err, ErrBadWeights) ||
		errors.Is(err, ErrMissingWeights) ||
		errors.Is(err, ErrEmptyCatalog) ||
		errors.Is(err, ErrUnknownCategory)
}
