// README: Session middleware; issues the cookie that scopes one page session.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "taxifare_session"

	sessionKey    = "session_id"
	sessionMaxAge = 12 * 60 * 60
)

// Session makes sure every request carries a session ID, issuing a new one
// when the cookie is missing or not a UUID.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the session set by Session, or "" outside of it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
