package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the error envelope handlers and middleware answer with.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     map[string]string
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError builds a 400 carrying per-field messages.
func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, HTTPStatus: http.StatusBadRequest, Fields: fields}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError never exposes the wrapped cause.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
