package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"vendor-registry/internal/database"
	"vendor-registry/internal/flash"

	"github.com/gin-gonic/gin"
)

type registerForm struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	Category    string `form:"category"`
	Description string `form:"description"`
}

// Register handles the public vendor registration form.
func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, "danger", "Please fill all required fields")
		c.Redirect(http.StatusFound, "/vendor")
		return
	}

	_, err := database.InsertVendor(database.NewVendor{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		Category:    form.Category,
		Description: form.Description,
	})
	if err != nil {
		var verr *database.ValidationError
		if errors.As(err, &verr) {
			flash.Add(c, "danger", "Please fill all required fields")
		} else {
			flash.Add(c, "danger", "Registration failed, please try again")
		}
		c.Redirect(http.StatusFound, "/vendor")
		return
	}

	flash.Add(c, "success", "Registration successful!")
	c.Redirect(http.StatusFound, "/vendor")
}

type contactForm struct {
	Name    string `form:"contact_name"`
	Email   string `form:"contact_email"`
	Message string `form:"contact_message"`
}

// Contact acknowledges a contact submission. Nothing is persisted.
func Contact(c *gin.Context) {
	var form contactForm
	_ = c.ShouldBind(&form)

	log.Printf("contact message from %s <%s>", form.Name, form.Email)
	flash.Add(c, "success", "Your message has been sent successfully! We'll get back to you soon.")
	c.Redirect(http.StatusFound, "/vendor")
}

type addVendorForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Category string `form:"category"`
}

// AddVendor inserts a vendor on behalf of an admin. The form has no
// description field; the record stores an empty one.
func AddVendor(c *gin.Context) {
	var form addVendorForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, "danger", "Missing required fields")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	_, err := database.InsertVendor(database.NewVendor{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Category: form.Category,
	})
	if err != nil {
		var verr *database.ValidationError
		if errors.As(err, &verr) {
			flash.Add(c, "danger", "Missing required fields")
		} else {
			flash.Add(c, "danger", "Failed to add vendor")
		}
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	flash.Add(c, "success", "Vendor added successfully by admin!")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeleteVendor removes a vendor by id. Deleting an already-deleted id is
// reported as success, matching the store contract.
func DeleteVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		flash.Add(c, "danger", "Invalid vendor id")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	if err := database.DeleteVendor(uint(id)); err != nil {
		flash.Add(c, "danger", "Failed to remove vendor")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	flash.Add(c, "success", "Vendor removed successfully!")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}
