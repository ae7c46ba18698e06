package handlers

import (
	"net/http"

	"vendor-registry/internal/database"
	"vendor-registry/internal/flash"
	"vendor-registry/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "admin_login.html", nil)
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login verifies credentials and opens an admin session.
func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil || !database.VerifyAdmin(form.Username, form.Password) {
		flash.Add(c, "danger", "Invalid credentials")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionAdminKey, form.Username)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the session unconditionally.
func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
