package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driving"
)

const (
	// sessionCookie carries the temporary user ID between requests.
	sessionCookie = "intellidoc_session"

	// sessionMaxAge keeps the cookie for thirty days.
	sessionMaxAge = 30 * 24 * 60 * 60

	// contextUserID is the gin context key for the session user.
	contextUserID = "session_user_id"
)

// sessionMiddleware resolves the request's session user, creating one
// on first contact.
type sessionMiddleware struct {
	service driving.SessionService
}

// Handle is the gin middleware establishing the session.
func (m *sessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
			user, err := m.service.Touch(ctx, id)
			if err == nil {
				c.Set(contextUserID, user.ID)
				c.Next()
				return
			}
		}

		user, err := m.service.Begin(ctx)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": "failed to start session"})
			return
		}

		c.SetCookie(sessionCookie, user.ID, sessionMaxAge, "/", "", false, true)
		c.Set(contextUserID, user.ID)
		c.Next()
	}
}

// sessionUser returns the session user ID set by the middleware.
func sessionUser(c *gin.Context) string {
	return c.GetString(contextUserID)
}
