package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidInput   = errors.New("invalid input")
	ErrTotalsMismatch = errors.New("document totals do not match items")
)

// ValidationError carries per-field messages. It unwraps to its sentinel so
// callers can still match with errors.Is.
type ValidationError struct {
	Err    error
	Fields map[string]string
}

func newValidationError(err error, fields map[string]string) *ValidationError {
	return &ValidationError{Err: err, Fields: fields}
}

func invalidField(field, msg string) *ValidationError {
	return newValidationError(ErrInvalidInput, map[string]string{field: msg})
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v (%d invalid fields)", e.Err, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
