// Package export renders vendor records as CSV downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"vendor-registry/internal/models"
)

var header = []string{"ID", "Name", "Email", "Phone", "Category", "Description", "Date Registered"}

// VendorsCSV renders the vendors as CSV in input order, one row per record
// under a fixed header. The same input always produces identical bytes.
func VendorsCSV(vendors []models.Vendor) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, v := range vendors {
		row := []string{
			strconv.FormatUint(uint64(v.ID), 10),
			v.Name,
			v.Email,
			v.Phone,
			v.Category,
			v.Description,
			v.DateRegistered.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// VendorCSV renders a single vendor: the header plus exactly one row.
func VendorCSV(v models.Vendor) ([]byte, error) {
	return VendorsCSV([]models.Vendor{v})
}
