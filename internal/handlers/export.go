package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"vendor-registry/internal/database"
	"vendor-registry/internal/export"
	"vendor-registry/internal/flash"

	"github.com/gin-gonic/gin"
)

// DownloadVendors streams every vendor as a CSV attachment.
func DownloadVendors(c *gin.Context) {
	vendors, err := database.ListVendors()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load vendors")
		return
	}

	data, err := export.VendorsCSV(vendors)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to build export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vendors.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// DownloadVendor streams a single vendor as a CSV attachment named after
// the vendor.
func DownloadVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		flash.Add(c, "danger", "Invalid vendor id")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	vendor, err := database.GetVendor(uint(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			flash.Add(c, "danger", "Vendor not found!")
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		c.String(http.StatusInternalServerError, "failed to load vendor")
		return
	}

	data, err := export.VendorCSV(vendor)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to build export")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", vendor.Name+".csv"))
	c.Data(http.StatusOK, "text/csv", data)
}
