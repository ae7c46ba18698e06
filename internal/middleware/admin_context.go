package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ContextAdminKey is the gin context key holding the current admin username.
const ContextAdminKey = "CurrentAdmin"

// InjectAdmin copies the session identity into the request-scoped gin
// context so handlers and templates never touch the session directly.
func InjectAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if username, ok := sess.Get(SessionAdminKey).(string); ok && username != "" {
			c.Set(ContextAdminKey, username)
		}
		c.Next()
	}
}
