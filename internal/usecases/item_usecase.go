package usecases

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
)

// ItemUsecase handles browsing and item management
type ItemUsecase struct {
	itemRepo repositories.ItemRepository
}

// NewItemUsecase creates a new item usecase
func NewItemUsecase(itemRepo repositories.ItemRepository) *ItemUsecase {
	return &ItemUsecase{itemRepo: itemRepo}
}

// Browse lists approved items only. Filters narrow by category and place.
func (u *ItemUsecase) Browse(ctx context.Context, filter entities.ItemFilter, limit, offset int) ([]*entities.Item, int, error) {
	filter.Status = entities.ItemStatusActive
	filter.UserID = nil
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.itemRepo.List(ctx, filter, limit, offset)
}

// Get returns a single item. Non-active items are only visible to their
// owner.
func (u *ItemUsecase) Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entities.Item, error) {
	item, err := u.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != entities.ItemStatusActive {
		if viewerID == nil || *viewerID != item.UserID {
			return nil, domainerrors.ErrNotFound
		}
	}
	return item, nil
}

// Mine lists the caller's own items in every status
func (u *ItemUsecase) Mine(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Item, int, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.itemRepo.List(ctx, entities.ItemFilter{UserID: &userID}, limit, offset)
}

// Delete removes the caller's own item
func (u *ItemUsecase) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return domainerrors.ErrForbidden
	}
	return u.itemRepo.SoftDelete(ctx, itemID)
}

// Categories returns the fixed category list clients filter by
func (u *ItemUsecase) Categories() []string {
	return entities.ItemCategories
}
