package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrUnavailable is returned when a backing store cannot serve the request
	ErrUnavailable = errors.New("backing store unavailable")
)

// ValidationError aggregates field-level validation issues so a caller can
// report every problem in one response instead of the first one hit.
type ValidationError struct {
	Issues map[string][]string
}

// NewValidationError creates an empty ValidationError. Callers add issues
// and return it only when Any() reports true.
func NewValidationError() *ValidationError {
	return &ValidationError{Issues: make(map[string][]string)}
}

// Add records an issue for a field.
func (e *ValidationError) Add(field, message string) {
	e.Issues[field] = append(e.Issues[field], message)
}

// Any reports whether any issue was recorded.
func (e *ValidationError) Any() bool {
	return len(e.Issues) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Issues))
	for f := range e.Issues {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Issues[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
