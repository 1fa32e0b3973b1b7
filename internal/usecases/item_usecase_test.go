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

func TestBrowse_ForcesActiveStatus(t *testing.T) {
	itemRepo := new(MockItemRepository)
	usecase := NewItemUsecase(itemRepo)
	ctx := context.Background()
	sneaky := uuid.New()

	itemRepo.On("List", ctx, mock.MatchedBy(func(f entities.ItemFilter) bool {
		return f.Status == entities.ItemStatusActive && f.UserID == nil && f.Category == "Electronics"
	}), defaultPageLimit, 0).Return([]*entities.Item{{ID: uuid.New()}}, 1, nil)

	items, total, err := usecase.Browse(ctx, entities.ItemFilter{
		Status:   entities.ItemStatusPending,
		UserID:   &sneaky,
		Category: "Electronics",
	}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, items, 1)
}

func TestItemGet_Visibility(t *testing.T) {
	itemRepo := new(MockItemRepository)
	usecase := NewItemUsecase(itemRepo)
	ctx := context.Background()
	ownerID, strangerID := uuid.New(), uuid.New()

	pending := &entities.Item{ID: uuid.New(), UserID: ownerID, Status: entities.ItemStatusPending}
	itemRepo.On("GetByID", ctx, pending.ID).Return(pending, nil)

	_, err := usecase.Get(ctx, pending.ID, nil)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = usecase.Get(ctx, pending.ID, &strangerID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	item, err := usecase.Get(ctx, pending.ID, &ownerID)
	require.NoError(t, err)
	require.Equal(t, pending.ID, item.ID)

	active := &entities.Item{ID: uuid.New(), UserID: ownerID, Status: entities.ItemStatusActive}
	itemRepo.On("GetByID", ctx, active.ID).Return(active, nil)

	_, err = usecase.Get(ctx, active.ID, nil)
	require.NoError(t, err)
}

func TestItemDelete(t *testing.T) {
	itemRepo := new(MockItemRepository)
	usecase := NewItemUsecase(itemRepo)
	ctx := context.Background()
	ownerID, itemID := uuid.New(), uuid.New()

	itemRepo.On("GetByID", ctx, itemID).Return(&entities.Item{ID: itemID, UserID: ownerID}, nil)
	itemRepo.On("SoftDelete", ctx, itemID).Return(nil)

	require.NoError(t, usecase.Delete(ctx, ownerID, itemID))

	stranger := uuid.New()
	err := usecase.Delete(ctx, stranger, itemID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	itemRepo.AssertNumberOfCalls(t, "SoftDelete", 1)
}

func TestCategories(t *testing.T) {
	usecase := NewItemUsecase(new(MockItemRepository))
	categories := usecase.Categories()
	require.NotEmpty(t, categories)
	require.Contains(t, categories, "Electronics")
}
