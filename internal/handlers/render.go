package handlers

import (
	"vendor-registry/internal/flash"
	"vendor-registry/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML so every template sees the current admin (if any)
// and the pending flash messages.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if username, ok := c.Get(middleware.ContextAdminKey); ok {
		data["CurrentAdmin"] = username
	}
	data["Flashes"] = flash.Pop(c)

	c.HTML(status, tmpl, data)
}
