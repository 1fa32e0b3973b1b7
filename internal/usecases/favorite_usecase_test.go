package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
)

func TestFavoriteAdd(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	itemRepo := new(MockItemRepository)
	usecase := NewFavoriteUsecase(favoriteRepo, itemRepo)
	ctx := context.Background()
	userID, ownerID, itemID := uuid.New(), uuid.New(), uuid.New()

	itemRepo.On("GetByID", ctx, itemID).Return(&entities.Item{
		ID:     itemID,
		UserID: ownerID,
		Status: entities.ItemStatusActive,
	}, nil)
	favoriteRepo.On("Exists", ctx, userID, itemID).Return(false, nil)
	favoriteRepo.On("Create", ctx, mock.MatchedBy(func(fav *entities.Favorite) bool {
		return fav.UserID == userID && fav.ItemID == itemID
	})).Return(nil)

	favorite, err := usecase.Add(ctx, userID, itemID)
	require.NoError(t, err)
	require.NotNil(t, favorite.Item)
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteAdd_TwiceIsNoop(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	itemRepo := new(MockItemRepository)
	usecase := NewFavoriteUsecase(favoriteRepo, itemRepo)
	ctx := context.Background()
	userID, itemID := uuid.New(), uuid.New()

	itemRepo.On("GetByID", ctx, itemID).Return(&entities.Item{
		ID:     itemID,
		UserID: uuid.New(),
		Status: entities.ItemStatusActive,
	}, nil)
	favoriteRepo.On("Exists", ctx, userID, itemID).Return(true, nil)

	_, err := usecase.Add(ctx, userID, itemID)
	require.NoError(t, err)
	favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteAdd_Rejections(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	itemRepo := new(MockItemRepository)
	usecase := NewFavoriteUsecase(favoriteRepo, itemRepo)
	ctx := context.Background()
	userID := uuid.New()

	pendingID := uuid.New()
	itemRepo.On("GetByID", ctx, pendingID).Return(&entities.Item{
		ID:     pendingID,
		UserID: uuid.New(),
		Status: entities.ItemStatusPending,
	}, nil)
	_, err := usecase.Add(ctx, userID, pendingID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	ownID := uuid.New()
	itemRepo.On("GetByID", ctx, ownID).Return(&entities.Item{
		ID:     ownID,
		UserID: userID,
		Status: entities.ItemStatusActive,
	}, nil)
	_, err = usecase.Add(ctx, userID, ownID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestFavoriteRemoveAndList(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	usecase := NewFavoriteUsecase(favoriteRepo, new(MockItemRepository))
	ctx := context.Background()
	userID, itemID := uuid.New(), uuid.New()

	favoriteRepo.On("Delete", ctx, userID, itemID).Return(nil)
	require.NoError(t, usecase.Remove(ctx, userID, itemID))

	favoriteRepo.On("GetByUserID", ctx, userID).Return([]*entities.Favorite{
		{UserID: userID, ItemID: itemID},
	}, nil)
	favorites, err := usecase.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
}
