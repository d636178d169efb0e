package models

import "time"

// User is a registered account. Users are never hard-deleted.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email     string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password  string    `json:"-"`                        // Store hashed password, ignore for JSON serialization
	CreatedAt time.Time `json:"created_at"`

	Profile Profile `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// UserCompact is the projection embedded in feeds, comments and notifications.
type UserCompact struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// ToCompact strips a user down to what other viewers may see.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.Profile.AvatarURL,
	}
}

// SignupRequest defines the request body for account registration
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the request body for authentication
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the own profile.
// All fields are optional; absent fields are left untouched.
type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=1,max=150"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
}
