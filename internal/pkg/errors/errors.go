// Package errors defines the error taxonomy of the persistence layer.
//
// Three failure classes exist: configuration (no backend resolvable),
// connection (a resolved backend could not be reached), and query (the
// backend rejected a statement). A zero-row lookup is never an error;
// single-entity lookups return nil instead.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeConfiguration = "CONFIGURATION_ERROR"
	CodeConnection    = "CONNECTION_ERROR"
	CodeQuery         = "QUERY_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// AppError represents an application error with context
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	StatusCode int               `json:"-"`
	Err        error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// New creates a new AppError
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Configuration creates a configuration error. Raised when no database
// backend can be resolved; never retried automatically.
func Configuration(message string) *AppError {
	return New(CodeConfiguration, message, http.StatusInternalServerError)
}

// Connection creates a connection error: the resolved backend handle could
// not execute a query at all (network or auth failure).
func Connection(message string) *AppError {
	return New(CodeConnection, message, http.StatusBadGateway)
}

// Query creates a query error: the backend rejected the statement. The
// backend's native error text travels in the wrapped error.
func Query(message string) *AppError {
	return New(CodeQuery, message, http.StatusInternalServerError)
}

// NotFound creates a not found error. Repositories themselves return nil
// for zero-row lookups; this constructor exists for callers above them
// that need a typed 404.
func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// Internal creates an internal server error
func Internal(message string) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to convert an error to a specific type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error if present
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func hasCode(err error, code string) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == code
	}
	return false
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	return hasCode(err, CodeConfiguration)
}

// IsConnection checks if the error is a connection error
func IsConnection(err error) bool {
	return hasCode(err, CodeConnection)
}

// IsQuery checks if the error is a query error
func IsQuery(err error) bool {
	return hasCode(err, CodeQuery)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}
