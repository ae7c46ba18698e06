package handlers

import (
	"net/http"
	"time"

	"vendor-registry/internal/database"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	render(c, http.StatusOK, "landing.html", nil)
}

// VendorPortal shows the public registration page with per-category counts.
func VendorPortal(c *gin.Context) {
	stats, total, err := database.CategoryStats()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load stats")
		return
	}

	render(c, http.StatusOK, "vendor.html", gin.H{
		"stats":       stats,
		"total":       total,
		"currentYear": time.Now().UTC().Year(),
	})
}
