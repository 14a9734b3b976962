package models

import "time"

// OrderStatusPending is the status of a freshly placed order.
const OrderStatusPending = "Pending"

// Order is a placed order. CartItems holds the cart line items serialized
// as a JSON array; Status is the only column changed after creation.
type Order struct {
	ID            uint64    `gorm:"primaryKey"                  json:"id"`
	UserID        *uint64   `gorm:"index"                       json:"user_id"`
	CustomerName  string    `gorm:"size:255"                    json:"customer_name"`
	Phone         string    `gorm:"size:50"                     json:"phone"`
	Address       string    `gorm:"size:512"                    json:"address"`
	City          string    `gorm:"size:100"                    json:"city"`
	PostalCode    string    `gorm:"size:20"                     json:"postal_code"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `gorm:"size:50"                     json:"payment_method"`
	CartItems     string    `gorm:"type:text"                   json:"cart_items"`
	Status        string    `gorm:"size:50;default:'Pending'"   json:"status"`
	CreatedAt     time.Time `gorm:"index"                       json:"created_at"`
}

// TableName specifies the database table name for the Order model.
func (Order) TableName() string {
	return "orders"
}
