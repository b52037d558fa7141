package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/session"
)

const (
	userIDKey    = "userId"
	userNameKey  = "userName"
	userEmailKey = "userEmail"
)

// RequireUser verifies the session cookie and stores the identity in the
// gin context. Requests without a valid session are sent to the login
// page.
func RequireUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := sessions.FromRequest(c)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(userIDKey, id.ID)
		c.Set(userNameKey, id.Name)
		c.Set(userEmailKey, id.Email)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by RequireUser.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserNameFromContext fetches the user name set by RequireUser.
func UserNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userNameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}

// UserEmailFromContext fetches the user email set by RequireUser.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}
