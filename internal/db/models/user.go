package models

// User is a storefront customer account created at signup.
type User struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255"   json:"name"`
	Email string `gorm:"size:255;index" json:"email"`
	// Password is the Argon2id hash. Rows imported from the old service may
	// still hold plaintext, see VerifyPassword.
	Password string `gorm:"size:255" json:"-"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// VerifyPassword checks password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return VerifyPassword(password, u.Password)
}
