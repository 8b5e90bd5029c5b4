// Package errors provides typed application errors that carry a
// machine-readable code and the HTTP status to respond with.
//
// Services return *AppError values (or wrap them); the HTTP layer translates
// them into the response envelope with errors.As. Anything that is not an
// AppError collapses to an opaque "Internal server error" so collaborator
// failures are never leaked to clients.
package errors
