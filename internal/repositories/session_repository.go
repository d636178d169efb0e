package repositories

import (
	"errors"
	"time"

	"github.com/blogloom/backend/internal/models"
	"gorm.io/gorm"
)

// SessionRepository defines the interface for login session storage
type SessionRepository interface {
	CreateSession(session *models.Session) error
	// GetSession returns ErrNotFound for unknown or expired sessions.
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error
	DeleteExpired() error
}

// PostgresSessionRepository implements SessionRepository for PostgreSQL
type PostgresSessionRepository struct {
	db *gorm.DB
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository
func NewPostgresSessionRepository(db *gorm.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

// CreateSession persists a new session row
func (r *PostgresSessionRepository) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetSession retrieves a live session by ID
func (r *PostgresSessionRepository) GetSession(id string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("id = ? AND expires_at > ?", id, time.Now()).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a session row
func (r *PostgresSessionRepository) DeleteSession(id string) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteExpired removes every expired session row
func (r *PostgresSessionRepository) DeleteExpired() error {
	return r.db.Where("expires_at <= ?", time.Now()).Delete(&models.Session{}).Error
}
