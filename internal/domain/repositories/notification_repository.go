package repositories

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
)

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
