package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProductData = errors.New("invalid product data")
	ErrUnknownVariant     = errors.New("unknown product variant")
)

// ValidationError names the field that broke a catalog rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidProductData, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidProductData
}
