package models

// User represents an authenticated customer or staff member.
type User struct {
	BaseModel
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Phone        string  `gorm:"uniqueIndex" json:"phone"`
	Email        string  `gorm:"index" json:"email"`
	DisplayName  string  `json:"display_name"`
	PasswordHash string  `json:"-"`
	IsAdmin      bool    `json:"is_admin"`
	Orders       []Order `json:"orders,omitempty"`
}
