package models

import "time"

const (
	RoleClient  = "client"
	RoleStylist = "stylist"
	RoleAdmin   = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	// Stylist-only fields; zero-valued for clients and admins.
	Bio            string `gorm:"type:text" json:"bio,omitempty"`
	Specialization string `gorm:"size:100" json:"specialization,omitempty"`
	Verified       bool   `gorm:"default:false" json:"verified"`

	// Accounts are soft-disabled, never deleted, so past appointments
	// keep valid references.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Bookable reports whether the user can currently take bookings.
func (u *User) Bookable() bool {
	return u.Role == RoleStylist && u.Active && u.Verified
}
