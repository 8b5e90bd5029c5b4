package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON body returned to clients on failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ToResponse converts an AppError to the client-facing error envelope.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Success: false, Message: e.Message, Status: e.Status}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
