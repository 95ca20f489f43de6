// Package errors provides standardized error definitions for the OpenMusic API.
package errors

import (
	"fmt"
	"net/http"
)

// Error represents a structured application error.
type Error struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"` // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy carrying details. The receiver is left
// untouched so the predefined errors stay safe to share.
func (e *Error) WithDetails(details interface{}) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// WithError returns a copy wrapping another error.
func (e *Error) WithError(err error) *Error {
	clone := *e
	clone.Err = err
	return &clone
}

// New creates a new Error.
func New(code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an existing error with error code and message.
func Wrap(err error, code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Common error codes
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeInvalidRequest  = "INVALID_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeInvariant       = "INVARIANT_VIOLATION"
	ErrCodeTokenExpired    = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid    = "TOKEN_INVALID"
	ErrCodeValidation      = "VALIDATION_FAILED"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeCacheError      = "CACHE_ERROR"
)

// Predefined errors
var (
	ErrInternal       = New(ErrCodeInternal, "Internal server error", http.StatusInternalServerError)
	ErrInvalidRequest = New(ErrCodeInvalidRequest, "Invalid request", http.StatusBadRequest)
	ErrNotFound       = New(ErrCodeNotFound, "Resource not found", http.StatusNotFound)
	ErrConflict       = New(ErrCodeConflict, "Resource conflict", http.StatusConflict)
	ErrForbidden      = New(ErrCodeForbidden, "Access forbidden", http.StatusForbidden)
	ErrUnauthorized   = New(ErrCodeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrBadRequest     = New(ErrCodeBadRequest, "Bad request", http.StatusBadRequest)
	ErrTokenExpired   = New(ErrCodeTokenExpired, "Token has expired", http.StatusUnauthorized)
	ErrTokenInvalid   = New(ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
	ErrValidation     = New(ErrCodeValidation, "Validation failed", http.StatusBadRequest)
	ErrDatabaseError  = New(ErrCodeDatabaseError, "Database error", http.StatusInternalServerError)
	ErrCacheError     = New(ErrCodeCacheError, "Cache error", http.StatusInternalServerError)
)

// IsError checks if an error is a specific application error.
func IsError(err error, target *Error) bool {
	if err == nil {
		return false
	}
	appErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return appErr.Code == target.Code
}

// GetHTTPStatus returns the HTTP status code for an error.
// If the error is not an *Error, returns 500.
func GetHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	appErr, ok := err.(*Error)
	if !ok {
		return http.StatusInternalServerError
	}
	return appErr.HTTPStatus
}

// GetCode returns the error code for an error.
// If the error is not an *Error, returns INTERNAL_ERROR.
func GetCode(err error) string {
	if err == nil {
		return ""
	}
	appErr, ok := err.(*Error)
	if !ok {
		return ErrCodeInternal
	}
	return appErr.Code
}
