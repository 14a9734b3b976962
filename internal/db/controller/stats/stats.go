// Package stats computes the admin dashboard aggregates.
package stats

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Stats is the admin dashboard summary.
type Stats struct {
	Sales    float64 `json:"sales"`
	Orders   int64   `json:"orders"`
	Products int64   `json:"products"`
	Users    int64   `json:"users"`
}

// Collect runs the four aggregate queries one after another. Each query
// is independent; the first failure aborts the rest.
func Collect(db *gorm.DB) (*Stats, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s Stats

	err := db.Model(&models.Order{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&s.Sales).Error
	if err != nil {
		return nil, fmt.Errorf("sum sales: %w", err)
	}

	if err = db.Model(&models.Order{}).Count(&s.Orders).Error; err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	if err = db.Model(&models.Product{}).Count(&s.Products).Error; err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	if err = db.Model(&models.User{}).Count(&s.Users).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return &s, nil
}
