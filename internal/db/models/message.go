package models

import "time"

// Message is a contact form submission. Messages are append-only.
type Message struct {
	ID        uint64    `gorm:"primaryKey"     json:"id"`
	Name      string    `gorm:"size:255"       json:"name"`
	Email     string    `gorm:"size:255"       json:"email"`
	Subject   string    `gorm:"size:255"       json:"subject"`
	Message   string    `gorm:"type:text"      json:"message"`
	CreatedAt time.Time `gorm:"index"          json:"created_at"`
}

// TableName specifies the database table name for the Message model.
func (Message) TableName() string {
	return "messages"
}
