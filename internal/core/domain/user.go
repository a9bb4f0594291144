package domain

import "time"

// Roles form a closed set. Owners may post listings, admins may do anything,
// plain users are read-only beyond their own account.
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleUser  = "user"
)

// ValidRole reports whether r is a member of the closed role set.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleUser:
		return true
	}
	return false
}

// User models a registered account. The password is kept only as a bcrypt
// digest and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
