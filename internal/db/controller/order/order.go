// Package order provides data access for placed orders.
package order

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrOrderNil is returned when a nil order is passed to Create.
	ErrOrderNil = errors.New("order is nil")
)

// Create serializes cartItems into the cart_items column, inserts the order
// and returns its generated id. Line items are stored as submitted.
func Create(db *gorm.DB, o *models.Order, cartItems []json.RawMessage) (uint64, error) {
	if db == nil {
		return 0, ErrDBNil
	}
	if o == nil {
		return 0, ErrOrderNil
	}

	if cartItems == nil {
		cartItems = []json.RawMessage{}
	}

	serialized, err := json.Marshal(cartItems)
	if err != nil {
		return 0, fmt.Errorf("serialize cart items: %w", err)
	}

	o.CartItems = string(serialized)
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}

	if err = db.Create(o).Error; err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	return o.ID, nil
}

// List returns all orders, most recent first.
func List(db *gorm.DB) ([]models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	orders := make([]models.Order, 0)
	if err := db.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus sets the status of the order with the given id. It reports
// no error when no row matched.
func UpdateStatus(db *gorm.DB, id uint64, status string) error {
	if db == nil {
		return ErrDBNil
	}

	err := db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}

	return nil
}
