package response

import (
	"net/http"

	domainerrors "justchoose/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code        string   `json:"code"`    // Business error code, e.g., "LOCATION_NOT_FOUND"
	Details     string   `json:"details"` // Detailed error description
	Retryable   bool     `json:"retryable,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// retryHinter is implemented by errors that know whether a retry can succeed.
type retryHinter interface {
	Retryable() bool
	Suggestions() []string
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// AppError renders an application error. Details of server-side failures are not exposed.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	status := appErr.HTTPCode()
	info := &ErrorInfo{Code: appErr.ErrorCode()}
	if status < http.StatusInternalServerError || status == http.StatusNotImplemented {
		info.Details = appErr.Details()
	}
	if hinter, ok := appErr.(retryHinter); ok {
		info.Retryable = hinter.Retryable()
		info.Suggestions = hinter.Suggestions()
	}

	return c.JSON(status, Response{
		Success: false,
		Code:    status,
		Message: appErr.Message(),
		Error:   info,
	})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
