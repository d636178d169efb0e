package models

import "time"

// Post is a blog entry. Views is monotonically non-decreasing and is bumped
// atomically in the store, never read-modify-written in application memory.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"` // opaque reference into object storage
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Views     uint      `json:"views" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Content  string `json:"content" validate:"required,min=1"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title    string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content  string `json:"content,omitempty" validate:"omitempty,min=1"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}
