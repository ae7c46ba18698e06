package database

import (
	"errors"

	"vendor-registry/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MaxAdmins = 5

var (
	ErrNotSuperAdmin  = errors.New("only the super admin can add admins")
	ErrAdminLimit     = errors.New("maximum number of admins reached")
	ErrDuplicateAdmin = errors.New("admin username already exists")
)

// dummyHash is a bcrypt hash of an unguessable throwaway value. VerifyAdmin
// compares against it when the username is unknown so the unknown-user and
// wrong-password paths both cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// EnsureSuperAdmin creates the super admin with the given password if it
// does not exist yet. Safe to call on every startup; a duplicate-key error
// from a concurrent first launch counts as success because the username
// unique index already guarantees a single row.
func EnsureSuperAdmin(password string) error {
	var count int64
	if err := DB.Model(&models.Admin{}).
		Where("username = ?", SuperAdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:     SuperAdminUsername,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	return nil
}

// VerifyAdmin reports whether the password matches the stored hash for the
// username. It fails closed: unknown usernames, database errors and stored
// values that are not bcrypt hashes (legacy plaintext rows) all verify false.
func VerifyAdmin(username, password string) bool {
	stored := dummyHash

	var admin models.Admin
	err := DB.Where("username = ?", username).First(&admin).Error
	if err == nil {
		stored = admin.PasswordHash
	}

	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
		return false
	}
	return err == nil
}

// AddAdmin creates a new admin on behalf of requestingUsername, which must
// be the super admin. The plaintext password is hashed before storage and
// never persisted.
func AddAdmin(requestingUsername, username, password string) error {
	if requestingUsername != SuperAdminUsername {
		return ErrNotSuperAdmin
	}

	var count int64
	if err := DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count >= MaxAdmins {
		return ErrAdminLimit
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAdmin
		}
		return err
	}

	return nil
}

func ListAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := DB.Order("id asc").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}
