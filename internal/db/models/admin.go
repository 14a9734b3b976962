package models

// Admin is a back-office account. Admin login only checks credentials,
// no session is issued.
type Admin struct {
	ID       uint64 `gorm:"primaryKey"             json:"id"`
	Username string `gorm:"size:100;index;not null" json:"username"`
	Password string `gorm:"size:255"               json:"-"`
}

// TableName specifies the database table name for the Admin model.
func (Admin) TableName() string {
	return "admins"
}

// VerifyPassword checks password against the stored hash.
func (a *Admin) VerifyPassword(password string) bool {
	return VerifyPassword(password, a.Password)
}
