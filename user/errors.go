package user

import (
	"fmt"
	"net/http"

	apperrors "github.com/mfrancor/characters-api/errors"
)

// ErrUserDataRequired is returned when required user fields are missing.
var ErrUserDataRequired = apperrors.New(
	apperrors.ErrCodeMissingField, "The user information is required", http.StatusBadRequest)

// ErrUserNotFound is returned when the requested user does not exist.
var ErrUserNotFound = apperrors.New(
	apperrors.ErrCodeNotFound, "The user not found", http.StatusNotFound)

// ErrUserAlreadyExists builds the error for a duplicate username.
func ErrUserAlreadyExists(username string) *apperrors.AppError {
	return apperrors.New(
		apperrors.ErrCodeAlreadyExists,
		fmt.Sprintf("The username %s already exists", username),
		http.StatusBadRequest)
}
