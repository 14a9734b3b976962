// Package message provides data access for contact form messages.
package message

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Create stores a contact message. CreatedAt is set by the database layer.
func Create(db *gorm.DB, name, email, subject, body string) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	m := &models.Message{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: body,
	}

	if err := db.Create(m).Error; err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return m, nil
}

// List returns all messages, most recent first.
func List(db *gorm.DB) ([]models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	messages := make([]models.Message, 0)
	if err := db.Order("created_at DESC").Order("id DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}
