// Package user provides data access for storefront customer accounts.
package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/db/models"
)

var (
	// ErrInvalidCredentials is returned when no user matches the email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create registers a new user. The password is stored as an Argon2id hash.
// Emails are not unique; signing up twice creates two rows.
func Create(db *gorm.DB, name, email, password string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}

	if err = db.Create(u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// Authenticate returns the first user (lowest id) with the given email
// whose password matches.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var candidates []models.User
	if err := db.Where("email = ?", email).Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	for i := range candidates {
		if candidates[i].VerifyPassword(password) {
			return &candidates[i], nil
		}
	}

	return nil, ErrInvalidCredentials
}
