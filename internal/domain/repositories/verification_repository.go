package repositories

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
)

// VerificationRepository defines identity verification data operations
type VerificationRepository interface {
	Create(ctx context.Context, verification *entities.Verification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Verification, error)
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.Verification, error)
	ListByStatus(ctx context.Context, status entities.VerificationStatus, limit, offset int) ([]*entities.Verification, int, error)
	Review(ctx context.Context, id, reviewerID uuid.UUID, status entities.VerificationStatus, reason string) error
}
