// Package admin provides data access for back-office accounts.
package admin

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/db/models"
)

var (
	// ErrInvalidCredentials is returned when no admin matches the username and password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrUsernameEmpty is returned when creating an admin without a username.
	ErrUsernameEmpty = errors.New("username cannot be empty")
)

// Authenticate checks the credentials against every admin with the
// given username.
func Authenticate(db *gorm.DB, username, password string) (*models.Admin, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var candidates []models.Admin
	if err := db.Where("username = ?", username).Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	for i := range candidates {
		if candidates[i].VerifyPassword(password) {
			return &candidates[i], nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Count returns the number of admin accounts.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	if err := db.Model(&models.Admin{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}

	return n, nil
}

// Create adds an admin with a hashed password.
func Create(db *gorm.DB, username, password string) (*models.Admin, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if username == "" {
		return nil, ErrUsernameEmpty
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &models.Admin{Username: username, Password: hash}
	if err = db.Create(a).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return a, nil
}
