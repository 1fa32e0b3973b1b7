package usecases

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
	"lizexpress.backend/internal/domain/repositories"
)

// NotificationUsecase handles the user's in-app notification feed
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo repositories.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

// List returns the user's notifications, newest first
func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.notificationRepo.GetByUserID(ctx, userID, limit, offset)
}

// MarkRead flags one notification as read
func (u *NotificationUsecase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return u.notificationRepo.MarkRead(ctx, notificationID, userID)
}

// UnreadCount returns how many notifications the user has not read
func (u *NotificationUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return u.notificationRepo.CountUnread(ctx, userID)
}
