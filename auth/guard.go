package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mfrancor/characters-api/errors"
	"github.com/mfrancor/characters-api/logger"
)

// bearerScheme is the Authorization scheme prefix; the scheme keyword is
// matched case-insensitively, then exactly this many characters are stripped.
const bearerScheme = "Bearer "

// subjectKey is the Gin context key the guard stores the subject id under.
const subjectKey = "auth.subjectId"

// Guard is the request filter in front of protected routes. It extracts the
// bearer token, verifies it, and attaches the subject id to the request
// context, or terminates the request with the error envelope. It holds no
// state between requests.
type Guard struct {
	verifier TokenVerifier
	log      *logger.Logger
}

// NewGuard creates a guard backed by the given token verifier.
func NewGuard(verifier TokenVerifier, log *logger.Logger) *Guard {
	return &Guard{
		verifier: verifier,
		log:      log.WithComponent("guard"),
	}
}

// Run returns the Gin middleware enforcing bearer authentication.
func (g *Guard) Run() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			abortWithError(c, apperrors.Unauthorized("no authorization"))
			return
		}

		if len(authorization) < len(bearerScheme) ||
			!strings.EqualFold(authorization[:len(bearerScheme)], bearerScheme) {
			abortWithError(c, ErrInvalidCredentials)
			return
		}

		subjectID, err := g.verifier.Verify(authorization[len(bearerScheme):])
		if err != nil {
			g.log.WithError(err).Warn("token rejected", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			abortWithError(c, err)
			return
		}

		c.Set(subjectKey, subjectID)
		c.Next()
	}
}

// SubjectID returns the subject id the guard attached to the request.
// It is only ever present after successful verification; handlers behind
// the guard may rely on ok being true.
func SubjectID(c *gin.Context) (string, bool) {
	id, ok := c.Get(subjectKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// abortWithError terminates the request with the error envelope. Non-AppError
// values collapse to an opaque 500.
func abortWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.AbortWithStatusJSON(appErr.Status, appErr.ToResponse())
		return
	}
	internal := apperrors.Internal(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, internal.ToResponse())
}
