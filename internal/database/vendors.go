package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vendor-registry/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("vendor not found")

// ValidationError lists the required registration fields that were missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// NewVendor carries a registration submission. Description is the only
// optional field.
type NewVendor struct {
	Name        string
	Email       string
	Phone       string
	Category    string
	Description string
}

// InsertVendor validates the submission, stamps it with the current UTC
// instant and persists it. The returned record carries the assigned id.
func InsertVendor(in NewVendor) (models.Vendor, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"category", in.Category},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.Vendor{}, &ValidationError{Missing: missing}
	}

	vendor := models.Vendor{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Category:       in.Category,
		Description:    in.Description,
		DateRegistered: time.Now().UTC(),
	}
	if err := DB.Create(&vendor).Error; err != nil {
		return models.Vendor{}, err
	}

	return vendor, nil
}

// ListVendors returns all vendors newest first. Id breaks ties so the
// order is stable for rows registered within the same instant.
func ListVendors() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := DB.Order("date_registered desc, id desc").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func GetVendor(id uint) (models.Vendor, error) {
	var vendor models.Vendor
	if err := DB.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Vendor{}, ErrNotFound
		}
		return models.Vendor{}, err
	}
	return vendor, nil
}

// DeleteVendor removes the vendor if present. Deleting an id that does not
// exist is not an error.
func DeleteVendor(id uint) error {
	return DB.Delete(&models.Vendor{}, id).Error
}

// CategoryStats returns the number of vendors per category together with
// the total count. Category is mandatory and single-valued, so the map
// values always sum to the total.
func CategoryStats() (map[string]int64, int64, error) {
	var rows []struct {
		Category string
		Total    int64
	}
	if err := DB.Model(&models.Vendor{}).
		Select("category, count(*) as total").
		Group("category").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	stats := make(map[string]int64, len(rows))
	for _, r := range rows {
		stats[r.Category] = r.Total
	}

	var total int64
	if err := DB.Model(&models.Vendor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return stats, total, nil
}
