package models

// Product is a catalog entry. Image holds a URL, either to media uploaded
// through the admin API or to an external host.
type Product struct {
	ID          uint64  `gorm:"primaryKey"    json:"id"`
	Name        string  `gorm:"size:255"      json:"name"`
	Category    string  `gorm:"size:100"      json:"category"`
	Price       float64 `json:"price"`
	Image       string  `gorm:"size:512"      json:"image"`
	Description string  `gorm:"type:text"     json:"description"`
}

// TableName specifies the database table name for the Product model.
func (Product) TableName() string {
	return "products"
}
