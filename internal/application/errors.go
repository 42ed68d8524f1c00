package application

import (
	"errors"
	"fmt"

	"wemtool/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrSameRoot         = errors.New("source and destination are the same directory")
	ErrIndexEmpty       = errors.New("index is empty")

	// ErrMappingNotFound is returned when no mapping snapshot exists yet
	ErrMappingNotFound = domain.ErrMappingNotFound
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RootError is a source or destination root that cannot be used
type RootError struct {
	Field  string
	Path   string
	Reason string
	Err    error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("%s %s: %s", formatFieldName(e.Field), e.Path, e.Reason)
}

func (e *RootError) Unwrap() error {
	return e.Err
}
