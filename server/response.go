package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mfrancor/characters-api/errors"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// RespondOK sends a 200 response wrapping data in the success envelope.
func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message, Data: data})
}

// RespondCreated sends a 201 response wrapping data in the success envelope.
func RespondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: message, Data: data})
}

// RespondError inspects err: if it is an *apperrors.AppError the status and
// body are derived from it; anything else is sent as an opaque 500 so
// collaborator failures never leak to clients.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.Status, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}
