package models

import "time"

// Like is one user's membership in a post's like set. The composite unique
// index keeps membership duplicate-free even under concurrent toggles.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleLikeRequest defines the request body for the like toggle endpoint
type ToggleLikeRequest struct {
	PostID uint `json:"post_id" validate:"required"`
}

// ToggleLikeResponse is the JSON result of a like toggle.
type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
