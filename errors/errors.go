package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is the human-readable message sent to clients.
	Message string `json:"message"`
	// Status is the HTTP status code to respond with.
	Status int `json:"status"`
	// Cause is the underlying error. Never serialized.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates a new AppError.
func New(code ErrorCode, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

// --- Common Error Constructors ---

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("The %s is required", field),
		Status: http.StatusBadRequest,
	}
}

// Validation creates a new AppError for validation failures.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Status: http.StatusBadRequest,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(message string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: message,
		Status: http.StatusNotFound,
	}
}

// AlreadyExists creates a new AppError for a resource that already exists.
func AlreadyExists(message string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: message,
		Status: http.StatusConflict,
	}
}

// Unauthorized creates a new AppError for unauthorized access.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Invalid credentials"
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: message,
		Status: http.StatusUnauthorized,
	}
}

// Internal creates a new AppError with an opaque client message. The cause is
// kept for logging but never reaches the response body.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Internal server error",
		Status: http.StatusInternalServerError, Cause: cause,
	}
}
