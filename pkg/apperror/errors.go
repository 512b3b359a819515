package apperror

import (
	"errors"
	"net/http"
)

// AppError is an application error carrying the HTTP status code to respond with.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a validation failure for a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}

	// ErrDuplicateInvoiceNo signals an invoice-number unique-constraint hit.
	// The committer retries with a freshly generated number before giving up.
	ErrDuplicateInvoiceNo = &AppError{Code: http.StatusConflict, Message: "Invoice number already exists"}
)

// NewAppError creates a new application error.
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a 422 error, optionally with per-field messages.
func NewValidationError(message string, fieldErrors []FieldError) *AppError {
	if message == "" {
		message = "Validation failed"
	}
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a 409 conflict error.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a 400 error.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewTransientError wraps an unexpected persistence failure. The original
// error text is not leaked to the client.
func NewTransientError() *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Operation failed, please try again",
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
