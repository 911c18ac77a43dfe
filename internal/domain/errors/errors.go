package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode    int
	errorCode   string
	message     string
	details     string
	retryable   bool
	suggestions []string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors sharing the same error code, so derived copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Retryable reports whether the caller may re-submit the same request later
func (e *BaseError) Retryable() bool {
	return e.retryable
}

// Suggestions returns textual hints for the caller
func (e *BaseError) Suggestions() []string {
	return e.suggestions
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithSuggestions attaches hints the caller can act on
func (e *BaseError) WithSuggestions(suggestions []string) *BaseError {
	clone := *e
	clone.suggestions = suggestions

	return &clone
}

func newRetryableError(httpCode int, errorCode, message string) *BaseError {
	err := NewBaseError(httpCode, errorCode, message, "")
	err.retryable = true

	return err
}

// Predefined error types
var (
	// Request validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)

	// Location resolution
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	// Provider errors
	ErrProviderCapability = NewBaseError(
		http.StatusNotImplemented,
		"PROVIDER_CAPABILITY",
		"This operation is not supported by the current places provider",
		"",
	)

	ErrProviderQuota = newRetryableError(
		http.StatusTooManyRequests,
		"PROVIDER_QUOTA",
		"API quota exceeded. Please try again later.",
	)

	ErrProviderUnavailable = newRetryableError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"The places provider is temporarily unavailable. Please try again.",
	)

	ErrSearchFailed = newRetryableError(
		http.StatusBadGateway,
		"SEARCH_FAILED",
		"Failed to search restaurants. Please try again.",
	)

	// Spin errors
	ErrInsufficientOptions = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_OPTIONS",
		"At least two options are required to spin",
		"",
	)

	ErrSelectionNotInOptions = NewBaseError(
		http.StatusBadRequest,
		"SELECTION_NOT_IN_OPTIONS",
		"Selected place is not one of the options",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid Google ID token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
