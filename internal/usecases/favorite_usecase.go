package usecases

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
)

// FavoriteUsecase handles saved items
type FavoriteUsecase struct {
	favoriteRepo repositories.FavoriteRepository
	itemRepo     repositories.ItemRepository
}

// NewFavoriteUsecase creates a new favorite usecase
func NewFavoriteUsecase(favoriteRepo repositories.FavoriteRepository, itemRepo repositories.ItemRepository) *FavoriteUsecase {
	return &FavoriteUsecase{favoriteRepo: favoriteRepo, itemRepo: itemRepo}
}

// Add saves an active item to the user's favorites. Adding twice is a
// no-op.
func (u *FavoriteUsecase) Add(ctx context.Context, userID, itemID uuid.UUID) (*entities.Favorite, error) {
	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != entities.ItemStatusActive {
		return nil, domainerrors.ErrNotFound
	}
	if item.UserID == userID {
		return nil, domainerrors.BadRequest("cannot favorite your own item")
	}

	exists, err := u.favoriteRepo.Exists(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	favorite := &entities.Favorite{UserID: userID, ItemID: itemID, Item: item}
	if exists {
		return favorite, nil
	}

	if err := u.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove drops an item from the user's favorites
func (u *FavoriteUsecase) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	return u.favoriteRepo.Delete(ctx, userID, itemID)
}

// List returns the user's favorites with their items
func (u *FavoriteUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	return u.favoriteRepo.GetByUserID(ctx, userID)
}
