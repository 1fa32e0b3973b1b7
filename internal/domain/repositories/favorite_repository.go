package repositories

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
)

// FavoriteRepository defines favorite data operations
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entities.Favorite) error
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error)
	Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
}
