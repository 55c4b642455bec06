package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("article not found")

	// ErrPreconditionFailed is matched by every business-rule rejection of a create.
	ErrPreconditionFailed = errors.New("article creation precondition failed")

	ErrDuplicateTitle = fmt.Errorf("%w: title already in use", ErrPreconditionFailed)
	ErrMissingFields  = fmt.Errorf("%w: title, content and author are required", ErrPreconditionFailed)
	ErrInvalidStatus  = fmt.Errorf("%w: status must be draft or published", ErrPreconditionFailed)
)

// ValidationError carries field-keyed messages for malformed create input.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records msg against field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}
