package models

// DefaultAvatarURL is the placeholder shown until the user uploads a picture.
// The backend only ever stores opaque references; the media itself lives in
// the object storage service.
const DefaultAvatarURL = "https://storage.blogloom.app/profile_pics/default.png"

// Profile holds the per-user data that is not part of the credential record.
// Every User has exactly one Profile; it is created inside the same
// transaction as the User row, never by an implicit hook.
type Profile struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	UserID    uint    `json:"user_id" gorm:"uniqueIndex"`
	Bio       string  `json:"bio" gorm:"size:500"`
	Phone     *string `json:"phone,omitempty" gorm:"uniqueIndex"`
	AvatarURL string  `json:"avatar_url"`
}
