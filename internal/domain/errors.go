package domain

import (
	"errors"
	"strings"
)

// Every error leaving a service wraps exactly one of these. The REST layer
// maps them to an error kind and status.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyExists stays inside the store and award layers: a duplicate
	// dedup key means the award was already granted.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConflict means a concurrent writer made the store abort the
	// transaction. Nothing was applied and the request can be retried.
	ErrConflict = errors.New("concurrency conflict")

	// ErrStorage means the store failed. Nothing was partially applied.
	ErrStorage = errors.New("storage error")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of one input.
type ValidationError struct {
	Errors []FieldError
}

// Error renders "invalid name: required; frequency: must be Daily or Weekly".
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("invalid ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
