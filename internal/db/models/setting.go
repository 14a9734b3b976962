// Package models contains database model definitions.
package models

// StoreSetting is one key/value pair of the storefront configuration
// (shop name, banner text, delivery fee, ...).
type StoreSetting struct {
	ID    uint64 `gorm:"primaryKey"                                  json:"id"`
	Key   string `gorm:"column:setting_key;uniqueIndex;size:191;not null" json:"setting_key"`
	Value string `gorm:"column:setting_value;type:text"              json:"setting_value"`
}

// TableName keeps the table name of the existing schema.
func (StoreSetting) TableName() string {
	return "store_settings"
}
