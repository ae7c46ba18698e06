package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInsertVendorAssignsIDAndTimestamp(t *testing.T) {
	setupTestDB(t)

	before := time.Now().UTC()
	vendor, err := InsertVendor(NewVendor{
		Name:        "Acme",
		Email:       "a@x.com",
		Phone:       "555",
		Category:    "Food",
		Description: "catering",
	})
	after := time.Now().UTC()

	assert.NoError(t, err)
	assert.NotZero(t, vendor.ID)
	assert.Equal(t, "Acme", vendor.Name)
	assert.Equal(t, "a@x.com", vendor.Email)
	assert.Equal(t, "555", vendor.Phone)
	assert.Equal(t, "Food", vendor.Category)
	assert.Equal(t, "catering", vendor.Description)
	assert.False(t, vendor.DateRegistered.Before(before))
	assert.False(t, vendor.DateRegistered.After(after))

	vendors, err := ListVendors()
	assert.NoError(t, err)
	assert.Len(t, vendors, 1)
}

func TestInsertVendorMissingFields(t *testing.T) {
	setupTestDB(t)

	_, err := InsertVendor(NewVendor{Name: "Acme", Category: "Food"})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email", "phone"}, verr.Missing)

	vendors, err := ListVendors()
	assert.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestInsertVendorDescriptionOptional(t *testing.T) {
	setupTestDB(t)

	vendor, err := InsertVendor(NewVendor{
		Name:     "Acme",
		Email:    "a@x.com",
		Phone:    "555",
		Category: "Food",
	})

	assert.NoError(t, err)
	assert.Empty(t, vendor.Description)
}

func TestListVendorsNewestFirst(t *testing.T) {
	setupTestDB(t)

	for _, name := range []string{"first", "second", "third"} {
		_, err := InsertVendor(NewVendor{
			Name: name, Email: name + "@x.com", Phone: "555", Category: "Food",
		})
		assert.NoError(t, err)
	}

	vendors, err := ListVendors()
	assert.NoError(t, err)
	assert.Len(t, vendors, 3)
	assert.Equal(t, "third", vendors[0].Name)
	assert.Equal(t, "second", vendors[1].Name)
	assert.Equal(t, "first", vendors[2].Name)
}

func TestGetVendor(t *testing.T) {
	setupTestDB(t)

	created, err := InsertVendor(NewVendor{
		Name: "Acme", Email: "a@x.com", Phone: "555", Category: "Food",
	})
	assert.NoError(t, err)

	got, err := GetVendor(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Acme", got.Name)

	_, err = GetVendor(created.ID + 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteVendorIdempotent(t *testing.T) {
	setupTestDB(t)

	created, err := InsertVendor(NewVendor{
		Name: "Acme", Email: "a@x.com", Phone: "555", Category: "Food",
	})
	assert.NoError(t, err)

	assert.NoError(t, DeleteVendor(created.ID))
	assert.NoError(t, DeleteVendor(created.ID))

	vendors, err := ListVendors()
	assert.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestCategoryStatsMatchesList(t *testing.T) {
	setupTestDB(t)

	inserts := []NewVendor{
		{Name: "a", Email: "a@x.com", Phone: "1", Category: "Food"},
		{Name: "b", Email: "b@x.com", Phone: "2", Category: "Food"},
		{Name: "c", Email: "c@x.com", Phone: "3", Category: "Crafts"},
	}
	var last uint
	for _, in := range inserts {
		v, err := InsertVendor(in)
		assert.NoError(t, err)
		last = v.ID
	}

	stats, total, err := CategoryStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats["Food"])
	assert.Equal(t, int64(1), stats["Crafts"])

	var sum int64
	for _, n := range stats {
		sum += n
	}
	vendors, err := ListVendors()
	assert.NoError(t, err)
	assert.Equal(t, total, sum)
	assert.Equal(t, int64(len(vendors)), total)

	// still consistent after a delete
	assert.NoError(t, DeleteVendor(last))
	stats, total, err = CategoryStats()
	assert.NoError(t, err)
	sum = 0
	for _, n := range stats {
		sum += n
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, int64(2), total)
	assert.NotContains(t, stats, "Crafts")
}

func TestCategoryStatsEmpty(t *testing.T) {
	setupTestDB(t)

	stats, total, err := CategoryStats()
	assert.NoError(t, err)
	assert.Empty(t, stats)
	assert.Zero(t, total)
}
