package repositories

import (
	"errors"

	"github.com/blogloom/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations.
// Categories are stored and listed; no post flow references them yet.
type CategoryRepository interface {
	CreateCategory(category *models.Category) error
	ListCategories() ([]models.Category, error)
}

// PostgresCategoryRepository implements CategoryRepository for PostgreSQL
type PostgresCategoryRepository struct {
	db *gorm.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(db *gorm.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// CreateCategory creates a new category
func (r *PostgresCategoryRepository) CreateCategory(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ListCategories retrieves every category ordered by name
func (r *PostgresCategoryRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}
