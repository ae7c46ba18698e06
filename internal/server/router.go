package server

import (
	"net/http"

	"vendor-registry/internal/config"
	"vendor-registry/internal/handlers"
	"vendor-registry/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("vendor_session", store))
	r.Use(middleware.InjectAdmin())

	RegisterRoutes(r, cfg)

	return r
}

// RegisterRoutes wires all handlers onto the engine. Split from NewRouter
// so tests can mount the routes without templates or static assets.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	// PUBLIC
	r.GET("/", handlers.Home)
	r.GET("/vendor", handlers.VendorPortal)
	r.POST("/register", handlers.Register)
	r.POST("/contact", handlers.Contact)

	// ADMIN AUTH
	r.GET("/admin/login", handlers.ShowLogin)
	r.POST("/admin/login", handlers.Login)
	r.GET("/admin/logout", handlers.Logout)

	// ADMIN AREA
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/dashboard", handlers.Dashboard)
	admin.POST("/add",
		middleware.RequireSuperAdmin(cfg.SuperAdminUser),
		handlers.AddAdmin,
	)
	admin.POST("/add_vendor", handlers.AddVendor)
	admin.POST("/delete_vendor/:id", handlers.DeleteVendor)
	admin.GET("/download_vendors", handlers.DownloadVendors)
	admin.GET("/download_vendor/:id", handlers.DownloadVendor)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}
