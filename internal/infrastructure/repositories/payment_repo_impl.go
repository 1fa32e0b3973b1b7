package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/models"
	"lizexpress.backend/pkg/utils"
)

// PaymentRepository implements payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = utils.GenerateUUIDv7()
	}
	m := &models.Payment{
		ID:          payment.ID,
		TxRef:       payment.TxRef,
		UserID:      payment.UserID,
		ItemID:      payment.ItemID,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      string(payment.Status),
		GatewayTxID: payment.GatewayTxID.Ptr(),
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	payment.ID = m.ID
	payment.CreatedAt = m.CreatedAt
	payment.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByTxRef gets a payment by its transaction reference
func (r *PaymentRepository) GetByTxRef(ctx context.Context, txRef string) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("tx_ref = ?", txRef).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets payments for a user with pagination
func (r *PaymentRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Payment{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Payment
	query := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	payments := make([]*entities.Payment, 0, len(ms))
	for i := range ms {
		payments = append(payments, r.toEntity(&ms[i]))
	}
	return payments, int(total), nil
}

// UpdateStatus updates a payment's status and optionally the gateway
// transaction id.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, txRef string, status entities.PaymentStatus, gatewayTxID string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if gatewayTxID != "" {
		updates["gateway_tx_id"] = gatewayTxID
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Payment{}).
		Where("tx_ref = ?", txRef).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkSuccessful flips a pending payment to successful. Only pending
// payments transition, so of two concurrent confirmers exactly one is
// told it won.
func (r *PaymentRepository) MarkSuccessful(ctx context.Context, txRef string, gatewayTxID string) (bool, error) {
	updates := map[string]interface{}{
		"status":     string(entities.PaymentStatusSuccessful),
		"updated_at": time.Now(),
	}
	if gatewayTxID != "" {
		updates["gateway_tx_id"] = gatewayTxID
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Payment{}).
		Where("tx_ref = ? AND status = ?", txRef, string(entities.PaymentStatusPending)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// LinkItem attaches the created item to its payment. An already linked
// payment is never relinked, so only one finalizer's item survives.
func (r *PaymentRepository) LinkItem(ctx context.Context, txRef string, itemID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Payment{}).
		Where("tx_ref = ? AND item_id IS NULL", txRef).
		Updates(map[string]interface{}{
			"item_id":    itemID,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(&models.Payment{}).
			Where("tx_ref = ?", txRef).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrAlreadyExists
	}
	return nil
}

// GetStalePending returns pending payments created before the cutoff
func (r *PaymentRepository) GetStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*entities.Payment, error) {
	var ms []models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.PaymentStatusPending), olderThan).
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	payments := make([]*entities.Payment, 0, len(ms))
	for i := range ms {
		payments = append(payments, r.toEntity(&ms[i]))
	}
	return payments, nil
}

// MarkAbandoned moves payments to abandoned in bulk
func (r *PaymentRepository) MarkAbandoned(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Payment{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(entities.PaymentStatusAbandoned),
			"updated_at": time.Now(),
		}).Error
}

func (r *PaymentRepository) toEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:          m.ID,
		TxRef:       m.TxRef,
		UserID:      m.UserID,
		ItemID:      m.ItemID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Status:      entities.PaymentStatus(m.Status),
		GatewayTxID: null.StringFromPtr(m.GatewayTxID),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
