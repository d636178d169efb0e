package models

import "time"

// Notification kinds.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
)

// Notification records another user's action on the recipient's content.
// Recipient and actor are never the same user.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:10;index"` // like, comment
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	PostID      *uint     `json:"post_id,omitempty" gorm:"index"`
	Message     string    `json:"message" gorm:"size:255"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
