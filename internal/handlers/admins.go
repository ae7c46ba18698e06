package handlers

import (
	"errors"
	"net/http"

	"vendor-registry/internal/database"
	"vendor-registry/internal/flash"
	"vendor-registry/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Dashboard renders all vendors (newest first), category stats and the
// admin list.
func Dashboard(c *gin.Context) {
	vendors, err := database.ListVendors()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load vendors")
		return
	}
	stats, total, err := database.CategoryStats()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load stats")
		return
	}
	admins, err := database.ListAdmins()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load admins")
		return
	}

	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"vendors":      vendors,
		"stats":        stats,
		"total":        total,
		"admins":       admins,
		"isSuperAdmin": c.GetString(middleware.ContextAdminKey) == database.SuperAdminUsername,
	})
}

type addAdminForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// AddAdmin creates a new admin account. The super-admin gate runs as route
// middleware; the store check against the requesting username is kept as
// the authoritative one.
func AddAdmin(c *gin.Context) {
	var form addAdminForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		flash.Add(c, "danger", "Please provide username and password")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	requesting := c.GetString(middleware.ContextAdminKey)
	switch err := database.AddAdmin(requesting, form.Username, form.Password); {
	case err == nil:
		flash.Add(c, "success", "Admin added successfully!")
	case errors.Is(err, database.ErrNotSuperAdmin):
		flash.Add(c, "danger", "Only super admin can add new admins")
	case errors.Is(err, database.ErrAdminLimit):
		flash.Add(c, "danger", "Maximum 5 admins allowed!")
	case errors.Is(err, database.ErrDuplicateAdmin):
		flash.Add(c, "danger", "Admin username already exists!")
	default:
		flash.Add(c, "danger", "Failed to add admin")
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}
