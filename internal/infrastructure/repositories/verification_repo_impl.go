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

// VerificationRepository implements identity verification data operations
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create creates a new verification submission
func (r *VerificationRepository) Create(ctx context.Context, verification *entities.Verification) error {
	if verification.ID == uuid.Nil {
		verification.ID = utils.GenerateUUIDv7()
	}
	m := &models.Verification{
		ID:           verification.ID,
		UserID:       verification.UserID,
		IDFrontImage: verification.IDFrontImage,
		IDBackImage:  verification.IDBackImage,
		SelfieImage:  verification.SelfieImage,
		Status:       string(verification.Status),
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	verification.CreatedAt = m.CreatedAt
	verification.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a verification by id
func (r *VerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Verification, error) {
	var m models.Verification
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetLatestByUserID gets a user's most recent verification submission
func (r *VerificationRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.Verification, error) {
	var m models.Verification
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByStatus lists verification submissions in a review state
func (r *VerificationRepository) ListByStatus(ctx context.Context, status entities.VerificationStatus, limit, offset int) ([]*entities.Verification, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Verification{}).
		Where("status = ?", string(status)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Verification
	query := db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	verifications := make([]*entities.Verification, 0, len(ms))
	for i := range ms {
		verifications = append(verifications, r.toEntity(&ms[i]))
	}
	return verifications, int(total), nil
}

// Review records a moderation decision; only pending submissions can
// be reviewed.
func (r *VerificationRepository) Review(ctx context.Context, id, reviewerID uuid.UUID, status entities.VerificationStatus, reason string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":      string(status),
		"reviewed_by": reviewerID,
		"reviewed_at": now,
		"updated_at":  now,
	}
	if reason != "" {
		updates["rejection_reason"] = reason
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Verification{}).
		Where("id = ? AND status = ?", id, string(entities.VerificationStatusPending)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

func (r *VerificationRepository) toEntity(m *models.Verification) *entities.Verification {
	return &entities.Verification{
		ID:              m.ID,
		UserID:          m.UserID,
		IDFrontImage:    m.IDFrontImage,
		IDBackImage:     m.IDBackImage,
		SelfieImage:     m.SelfieImage,
		Status:          entities.VerificationStatus(m.Status),
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      m.ReviewedAt,
		RejectionReason: null.StringFromPtr(m.RejectionReason),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
