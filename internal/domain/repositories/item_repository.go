package repositories

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
)

// ItemRepository defines item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entities.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Item, error)
	List(ctx context.Context, filter entities.ItemFilter, limit, offset int) ([]*entities.Item, int, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, status entities.ItemStatus) (int64, error)
	Approve(ctx context.Context, id, adminID uuid.UUID) error
	Reject(ctx context.Context, id, adminID uuid.UUID, reason string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
