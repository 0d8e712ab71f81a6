package model

// User is a login account. Password is stored as entered; the three default
// accounts are seeded at startup and never modified by the application.
// Role: "admin" | "staff" | "viewer"
type User struct {
	Username string `gorm:"primaryKey;type:varchar(64)"`
	Password string `gorm:"not null"`
	Role     string `gorm:"type:varchar(16);not null"`
}

func (User) TableName() string { return "users" }

// DefaultUsers are inserted on first start when absent.
var DefaultUsers = []User{
	{Username: "admin", Password: "admin123", Role: "admin"},
	{Username: "staff", Password: "staff123", Role: "staff"},
	{Username: "viewer", Password: "viewer123", Role: "viewer"},
}
