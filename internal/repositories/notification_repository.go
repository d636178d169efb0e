package repositories

import (
	"errors"

	"github.com/blogloom/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	// ListAndMarkRead returns the recipient's notifications newest first and
	// flips every unread one to read as part of the same transaction.
	// Listing and marking are one fused operation.
	ListAndMarkRead(recipientID uint) ([]models.Notification, error)
	// GetForRecipient returns the notification only when it belongs to the
	// recipient; anything else is ErrNotFound.
	GetForRecipient(id, recipientID uint) (*models.Notification, error)
	MarkAsRead(id uint) error
	GetUnreadCount(recipientID uint) (int64, error)
}

// PostgresNotificationRepository implements NotificationRepository for PostgreSQL
type PostgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *PostgresNotificationRepository) ListAndMarkRead(recipientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipient_id = ?", recipientID).
			Order("created_at DESC").
			Find(&notifications).Error; err != nil {
			return err
		}
		return tx.Model(&models.Notification{}).
			Where("recipient_id = ? AND is_read = false", recipientID).
			Update("is_read", true).Error
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *PostgresNotificationRepository) GetForRecipient(id, recipientID uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *PostgresNotificationRepository) MarkAsRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *PostgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Count(&count).Error
	return count, err
}
