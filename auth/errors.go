package auth

import (
	"net/http"

	apperrors "github.com/mfrancor/characters-api/errors"
)

// Sentinel errors for the authentication flow. Handlers and the guard match
// on these with errors.Is; the HTTP layer derives status and message from
// the embedded AppError. Never mutate them.
var (
	// ErrCredentialsRequired is returned when username or password is missing
	// from a login request.
	ErrCredentialsRequired = apperrors.New(
		apperrors.ErrCodeMissingField, "Credentials are required", http.StatusBadRequest)

	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = apperrors.New(
		apperrors.ErrCodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)

	// ErrTokenRequired is returned when an empty token is passed to Verify.
	ErrTokenRequired = apperrors.New(
		apperrors.ErrCodeTokenRequired, "The token is required", http.StatusUnauthorized)

	// ErrTokenDataRequired is returned when Sign is called without a subject id.
	ErrTokenDataRequired = apperrors.New(
		apperrors.ErrCodeTokenDataRequired, "The token data is required", http.StatusUnauthorized)

	// ErrInvalidToken is returned on signature mismatch or structural corruption.
	ErrInvalidToken = apperrors.New(
		apperrors.ErrCodeInvalidToken, "Invalid token", http.StatusUnauthorized)

	// ErrExpiredToken is returned for a structurally valid token whose embedded
	// expiry has passed. Distinct from ErrInvalidToken so clients can tell
	// "log in again" from "malformed token".
	ErrExpiredToken = apperrors.New(
		apperrors.ErrCodeTokenExpired, "Expired token", http.StatusUnauthorized)
)
