// Package common holds the error values, retry loop and logger setup shared
// by every windowwise package.
package common

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrEmptyCatalog       = errors.New("catalog has no products")

	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError carries a message meant for the terminal alongside the error
// that caused it. main prints UserMessage instead of the raw chain.
type UserError struct {
	Err         error
	UserMessage string
}

// NewUserError wraps err with a message for the user. err may be nil.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
}

func (e *UserError) Unwrap() error { return e.Err }
