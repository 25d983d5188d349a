package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError reports a failed read or write against the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// FieldError names one rejected input field.
type FieldError struct {
	Name   string
	Reason string
}

// ValidationError collects field-level input violations. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Name+" "+fe.Reason)
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError builds a ValidationError from a field→error map,
// sorted by field name so messages are stable.
func NewValidationError(fields map[string]error) *ValidationError {
	ve := &ValidationError{Errors: make([]FieldError, 0, len(fields))}
	for name, err := range fields {
		ve.Errors = append(ve.Errors, FieldError{Name: name, Reason: err.Error()})
	}
	sort.Slice(ve.Errors, func(i, j int) bool { return ve.Errors[i].Name < ve.Errors[j].Name })
	return ve
}
