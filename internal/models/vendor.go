package models

import "time"

// Vendor rows are only ever inserted or deleted, never updated,
// so there is no UpdatedAt / DeletedAt bookkeeping.
type Vendor struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"size:255;not null"`
	Email          string    `gorm:"size:255;not null"`
	Phone          string    `gorm:"size:50;not null"`
	Category       string    `gorm:"size:100;not null"`
	Description    string    `gorm:"type:text"`
	DateRegistered time.Time `gorm:"not null"`
}
