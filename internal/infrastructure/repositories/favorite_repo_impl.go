package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/models"
	"lizexpress.backend/pkg/utils"
)

// FavoriteRepository implements favorite data operations
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create creates a new favorite
func (r *FavoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	if favorite.ID == uuid.Nil {
		favorite.ID = utils.GenerateUUIDv7()
	}
	m := &models.Favorite{
		ID:     favorite.ID,
		UserID: favorite.UserID,
		ItemID: favorite.ItemID,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	favorite.CreatedAt = m.CreatedAt
	return nil
}

// Delete removes a favorite
func (r *FavoriteRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetByUserID gets a user's favorites with their items preloaded
func (r *FavoriteRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	var ms []models.Favorite
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	favorites := make([]*entities.Favorite, 0, len(ms))
	for i := range ms {
		f := &entities.Favorite{
			ID:        ms[i].ID,
			UserID:    ms[i].UserID,
			ItemID:    ms[i].ItemID,
			CreatedAt: ms[i].CreatedAt,
		}
		if ms[i].Item.ID != uuid.Nil {
			item, err := itemModelToEntity(&ms[i].Item)
			if err != nil {
				return nil, err
			}
			f.Item = item
		}
		favorites = append(favorites, f)
	}
	return favorites, nil
}

// Exists reports whether the user already favorited the item
func (r *FavoriteRepository) Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}
