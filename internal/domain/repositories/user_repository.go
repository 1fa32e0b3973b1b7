package repositories

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int, error)
	CountSince(ctx context.Context, since int64) (int64, error)
}
