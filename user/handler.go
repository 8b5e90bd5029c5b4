package user

import (
	"github.com/gin-gonic/gin"

	"github.com/mfrancor/characters-api/server"
)

// Handler exposes user endpoints. Signup is public; everything else
// sits behind the token guard.
type Handler struct {
	svc *Service
}

// NewHandler creates the user HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the user routes on the given router group.
func (h *Handler) Register(r gin.IRouter, guard gin.HandlerFunc) {
	r.POST("/users", h.Create)

	protected := r.Group("/users", guard)
	protected.GET("/:id", h.FindByID)
	protected.PATCH("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// Create handles POST /users.
func (h *Handler) Create(c *gin.Context) {
	var dto CreateUserDTO
	_ = c.ShouldBindJSON(&dto)

	u, err := h.svc.Create(c.Request.Context(), dto)
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondCreated(c, "user created", u)
}

// FindByID handles GET /users/:id.
func (h *Handler) FindByID(c *gin.Context) {
	u, err := h.svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondOK(c, "user found", u)
}

// Update handles PATCH /users/:id.
func (h *Handler) Update(c *gin.Context) {
	var dto UpdateUserDTO
	_ = c.ShouldBindJSON(&dto)

	u, err := h.svc.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondOK(c, "user updated", u)
}

// Delete handles DELETE /users/:id.
func (h *Handler) Delete(c *gin.Context) {
	u, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondOK(c, "user deleted", u)
}
