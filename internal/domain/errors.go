package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyPalette    = errors.New("palette is empty")
	ErrDuplicateSymbol = errors.New("duplicate palette symbol")
	ErrEmptySymbol     = errors.New("empty palette symbol")
	ErrNegativeCount   = errors.New("flower count must be non-negative")
	ErrPaletteNotFound = errors.New("palette file not found")
)

// ValidationError carries the user-facing reason an argument was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidf(field string, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
