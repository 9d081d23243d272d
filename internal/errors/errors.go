// Package errors provides the application error catalogue for the propcalc API.
// Service-layer errors should use AppError so handlers can render a
// consistent response without leaking internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrRateLimited    = &AppError{Code: "RATE_LIMITED", Message: "Too many requests, slow down", StatusCode: http.StatusTooManyRequests}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Calculator errors.
var (
	ErrInvalidProperty  = &AppError{Code: "INVALID_INPUT", Message: "Property price and monthly rent must be positive", StatusCode: http.StatusBadRequest}
	ErrTooManyScenarios = &AppError{Code: "TOO_MANY_SCENARIOS", Message: "Too many down payment scenarios requested", StatusCode: http.StatusBadRequest}
	ErrUnsupportedFrame = &AppError{Code: "UNSUPPORTED_FRAME", Message: "Only text frames are accepted", StatusCode: http.StatusBadRequest}
)
