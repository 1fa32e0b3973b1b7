package repositories

import (
	"context"
	"encoding/json"
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

// ItemRepository implements item data operations
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create creates a new item
func (r *ItemRepository) Create(ctx context.Context, item *entities.Item) error {
	if item.ID == uuid.Nil {
		item.ID = utils.GenerateUUIDv7()
	}
	m, err := r.toModel(item)
	if err != nil {
		return err
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an item by ID
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Item, error) {
	var m models.Item
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// List lists items matching the filter with pagination
func (r *ItemRepository) List(ctx context.Context, filter entities.ItemFilter, limit, offset int) ([]*entities.Item, int, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Item{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.State != "" {
		query = query.Where("item_state = ?", filter.State)
	}
	if filter.Country != "" {
		query = query.Where("item_country = ?", filter.Country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Item
	listQuery := query.Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Limit(limit).Offset(offset)
	}
	if err := listQuery.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Item, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, int(total), nil
}

// CountByUserID counts items owned by a user regardless of status
func (r *ItemRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Item{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// CountByStatus counts items in a moderation state
func (r *ItemRepository) CountByStatus(ctx context.Context, status entities.ItemStatus) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Item{}).
		Where("status = ?", string(status)).
		Count(&total).Error
	return total, err
}

// Approve moves a pending item to active. Only pending items transition.
func (r *ItemRepository) Approve(ctx context.Context, id, adminID uuid.UUID) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Item{}).
		Where("id = ? AND status = ?", id, string(entities.ItemStatusPending)).
		Updates(map[string]interface{}{
			"status":      string(entities.ItemStatusActive),
			"approved_at": now,
			"approved_by": adminID,
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

// Reject moves a pending item to rejected with a reason
func (r *ItemRepository) Reject(ctx context.Context, id, adminID uuid.UUID, reason string) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Item{}).
		Where("id = ? AND status = ?", id, string(entities.ItemStatusPending)).
		Updates(map[string]interface{}{
			"status":           string(entities.ItemStatusRejected),
			"approved_by":      adminID,
			"rejection_reason": reason,
			"updated_at":       now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

// SoftDelete soft-deletes an item
func (r *ItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) toModel(item *entities.Item) (*models.Item, error) {
	images, err := json.Marshal(item.Images)
	if err != nil {
		return nil, err
	}
	return &models.Item{
		ID:              item.ID,
		UserID:          item.UserID,
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		Condition:       string(item.Condition),
		BuyingPrice:     item.BuyingPrice.Ptr(),
		EstimatedCost:   item.EstimatedCost,
		SwapFor:         item.SwapFor,
		Location:        item.Location.Ptr(),
		ItemLocation:    item.ItemLocation,
		ItemState:       item.ItemState,
		ItemCountry:     item.ItemCountry,
		Images:          string(images),
		ReceiptImage:    item.ReceiptImage.Ptr(),
		Status:          string(item.Status),
		ApprovedAt:      item.ApprovedAt,
		ApprovedBy:      item.ApprovedBy,
		RejectionReason: item.RejectionReason.Ptr(),
	}, nil
}

func (r *ItemRepository) toEntity(m *models.Item) (*entities.Item, error) {
	return itemModelToEntity(m)
}

// itemModelToEntity is shared with the favorite repository, which
// preloads items alongside favorites.
func itemModelToEntity(m *models.Item) (*entities.Item, error) {
	var images []string
	if m.Images != "" {
		if err := json.Unmarshal([]byte(m.Images), &images); err != nil {
			return nil, err
		}
	}
	return &entities.Item{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Description:     m.Description,
		Category:        m.Category,
		Condition:       entities.ItemCondition(m.Condition),
		BuyingPrice:     null.Float64FromPtr(m.BuyingPrice),
		EstimatedCost:   m.EstimatedCost,
		SwapFor:         m.SwapFor,
		Location:        null.StringFromPtr(m.Location),
		ItemLocation:    m.ItemLocation,
		ItemState:       m.ItemState,
		ItemCountry:     m.ItemCountry,
		Images:          images,
		ReceiptImage:    null.StringFromPtr(m.ReceiptImage),
		Status:          entities.ItemStatus(m.Status),
		ApprovedAt:      m.ApprovedAt,
		ApprovedBy:      m.ApprovedBy,
		RejectionReason: null.StringFromPtr(m.RejectionReason),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}
