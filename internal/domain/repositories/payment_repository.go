package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
)

// PaymentRepository defines payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByTxRef(ctx context.Context, txRef string) (*entities.Payment, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error)
	UpdateStatus(ctx context.Context, txRef string, status entities.PaymentStatus, gatewayTxID string) error
	MarkSuccessful(ctx context.Context, txRef string, gatewayTxID string) (bool, error)
	LinkItem(ctx context.Context, txRef string, itemID uuid.UUID) error
	GetStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*entities.Payment, error)
	MarkAbandoned(ctx context.Context, ids []uuid.UUID) error
}
