package repositories

import (
	"errors"
	"fmt"

	"github.com/blogloom/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	// IncrementViews bumps the view counter by exactly one with a
	// store-native atomic update. Returns ErrNotFound when no such post
	// exists.
	IncrementViews(id uint) error
	ListPosts() ([]models.Post, error)
	ListPostsByAuthor(authorID uint) ([]models.Post, error)
	// ListRelated returns up to limit posts other than the given one.
	ListRelated(excludeID uint, limit int) ([]models.Post, error)
	SearchByTitle(query string) ([]models.Post, error)
	UpdatePost(post *models.Post) error
	// DeletePost removes the post together with its comments, likes and
	// notifications in one transaction.
	DeletePost(id uint) error
	TotalViewsByAuthor(authorID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post with a zero view counter and empty like set
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its author by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Author.Profile").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViews atomically increments the post's view counter
func (r *PostgresPostRepository) IncrementViews(id uint) error {
	res := r.db.Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPosts retrieves every post, newest first
func (r *PostgresPostRepository) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Author.Profile").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// ListPostsByAuthor retrieves one author's posts, newest first
func (r *PostgresPostRepository) ListPostsByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Author.Profile").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// ListRelated retrieves up to limit posts excluding the given one
func (r *PostgresPostRepository) ListRelated(excludeID uint, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Where("id <> ?", excludeID).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// SearchByTitle retrieves posts whose title contains the query, case-insensitively
func (r *PostgresPostRepository) SearchByTitle(query string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Where("title ILIKE ?", "%"+query+"%").
		Find(&posts).Error
	return posts, err
}

// UpdatePost persists changed post fields
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes the post and everything hanging off it
func (r *PostgresPostRepository) DeletePost(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// TotalViewsByAuthor sums the view counters over one author's posts
func (r *PostgresPostRepository) TotalViewsByAuthor(authorID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}
