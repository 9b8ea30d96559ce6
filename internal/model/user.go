package model

import (
	"time"
)

// User roles. The role is copied into the session at login.
const (
	RoleGuest      = "guest"
	RoleMember     = "member"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// GuestUserID is the sentinel identity of guest sessions.
const GuestUserID = "guest"

type User struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	Email           *string   `gorm:"uniqueIndex" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL *string   `gorm:"column:profile_image_url" json:"profileImageUrl"`
	Role            string    `gorm:"not null;default:guest" json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PublicUser is the sanitized projection returned to clients.
type PublicUser struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
	Role      string  `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

// GuestUser is the fixed projection for guest sessions.
func GuestUser() PublicUser {
	return PublicUser{
		ID:        GuestUserID,
		Username:  "Guest User",
		FirstName: "Guest",
		LastName:  "User",
		Role:      RoleGuest,
	}
}
