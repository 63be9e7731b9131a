// Package storage persists the window product catalog in SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/windowwise/internal/model"
)

// Argument errors returned before any query runs.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(value, name string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrEmptyString, name)
}

// validateProducts rejects the whole batch if any product is invalid. An
// empty, non-nil slice is allowed and clears the catalog.
func validateProducts(products []model.Product) error {
	if products == nil {
		return fmt.Errorf("%w: products", ErrNilParameter)
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return fmt.Errorf("product at index %d (%s): %w", i, products[i].Brand, err)
		}
	}
	return nil
}
