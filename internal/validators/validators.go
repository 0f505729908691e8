// Package validators checks request payloads before they reach the diary
// services.
package validators

import (
	"context"
	"errors"
)

var (
	// ErrInvalidInput wraps every rule violation. The wrapped message lists
	// the offending fields and is safe to show to API callers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType means Validate was handed something other than a
	// struct or a pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Validator checks a payload. When fields are given only those struct fields
// are checked, which lets partial updates reuse the full request type.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
