package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/mfrancor/characters-api/server"
)

// Handler exposes the login route.
type Handler struct {
	svc *Service
}

// NewHandler creates the auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the public login route.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/login", h.Login)
}

// Login handles POST /login.
func (h *Handler) Login(c *gin.Context) {
	var credentials Credentials
	// A malformed body leaves the credentials empty and fails presence
	// validation in the service, so the bind error itself is not fatal.
	_ = c.ShouldBindJSON(&credentials)

	user, err := h.svc.Login(c.Request.Context(), credentials)
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondOK(c, "user loged", user)
}
