// Package product provides data access for the product catalog.
package product

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/db/models"
)

var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrProductNil is returned when a nil product is passed to Create.
	ErrProductNil = errors.New("product is nil")
)

// Fields are the editable columns of a product.
type Fields struct {
	Name        string
	Category    string
	Price       float64
	Description string
}

// List returns all products, newest id first.
func List(db *gorm.DB) ([]models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	products := make([]models.Product, 0)
	if err := db.Order("id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

// Get returns the product with the given id.
func Get(db *gorm.DB, id uint64) (*models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var p models.Product
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}

	return &p, nil
}

// Create inserts p and sets its ID.
func Create(db *gorm.DB, p *models.Product) error {
	if db == nil {
		return ErrDBNil
	}
	if p == nil {
		return ErrProductNil
	}

	if err := db.Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

// Update overwrites the editable columns of the product with the given id.
// The image column is only written when image is non-nil. Updating an id
// that does not exist is not an error.
func Update(db *gorm.DB, id uint64, f Fields, image *string) error {
	if db == nil {
		return ErrDBNil
	}

	values := map[string]interface{}{
		"name":        f.Name,
		"category":    f.Category,
		"price":       f.Price,
		"description": f.Description,
	}
	if image != nil {
		values["image"] = *image
	}

	if err := db.Model(&models.Product{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}

	return nil
}

// Delete removes the product with the given id. Deleting an id that does
// not exist is not an error.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	return nil
}
