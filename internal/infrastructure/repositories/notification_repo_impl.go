package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/models"
	"lizexpress.backend/pkg/utils"
)

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = utils.GenerateUUIDv7()
	}
	m := &models.Notification{
		ID:      notification.ID,
		UserID:  notification.UserID,
		Type:    string(notification.Type),
		Title:   notification.Title,
		Content: notification.Content,
		IsRead:  notification.IsRead,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	notification.CreatedAt = m.CreatedAt
	return nil
}

// GetByUserID gets notifications for a user, newest first
func (r *NotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Notification
	query := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*entities.Notification, 0, len(ms))
	for i := range ms {
		notifications = append(notifications, r.toEntity(&ms[i]))
	}
	return notifications, int(total), nil
}

// MarkRead marks a notification as read; scoped to its owner
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountUnread counts a user's unread notifications
func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) toEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.NotificationType(m.Type),
		Title:     m.Title,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
