package middleware

import (
	"net/http"

	"vendor-registry/internal/flash"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionAdminKey is the session key holding the authenticated admin username.
const SessionAdminKey = "admin"

// RequireAdmin gates admin-only routes. Anonymous requests are bounced to
// the login page with a warning and never reach the handler.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if _, ok := sess.Get(SessionAdminKey).(string); !ok {
			flash.Add(c, "warning", "Please log in as admin")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin additionally requires the session identity to be the
// distinguished super admin. Other admins are sent back to the dashboard.
func RequireSuperAdmin(superAdmin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		username, ok := sess.Get(SessionAdminKey).(string)
		if !ok {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if username != superAdmin {
			flash.Add(c, "danger", "Only super admin can add new admins")
			c.Redirect(http.StatusFound, "/admin/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
