package models

import "time"

// Role constants. The access model is a binary admin/user check.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an authenticated application user
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
