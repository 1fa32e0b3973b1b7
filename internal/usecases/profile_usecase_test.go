package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"lizexpress.backend/internal/domain/entities"
	"lizexpress.backend/internal/infrastructure/storage"
)

func TestProfileGet(t *testing.T) {
	userRepo := new(MockUserRepository)
	usecase := NewProfileUsecase(userRepo, new(MockObjectStore))
	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("GetByID", ctx, userID).Return(&entities.User{ID: userID}, nil)

	profile, err := usecase.Get(ctx, userID)
	require.NoError(t, err)
	require.False(t, profile.Complete)
	require.NotEmpty(t, profile.MissingFields)
}

func TestProfileUpdate_EmptyFieldsUntouched(t *testing.T) {
	userRepo := new(MockUserRepository)
	usecase := NewProfileUsecase(userRepo, new(MockObjectStore))
	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("GetByID", ctx, userID).Return(&entities.User{
		ID:       userID,
		FullName: null.StringFrom("Ada Obi"),
		Country:  null.StringFrom("Nigeria"),
	}, nil)
	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entities.User) bool {
		return u.FullName.String == "Ada Obi" && u.State.String == "Lagos" && u.Country.String == "Nigeria"
	})).Return(nil)

	profile, err := usecase.Update(ctx, userID, &entities.UpdateProfileInput{State: "Lagos"})
	require.NoError(t, err)
	require.Equal(t, "Lagos", profile.User.State.String)
	userRepo.AssertExpectations(t)
}

func TestUploadAvatar_ReplacesOld(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockObjectStore)
	usecase := NewProfileUsecase(userRepo, store)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("GetByID", ctx, userID).Return(&entities.User{
		ID:        userID,
		AvatarURL: null.StringFrom("/storage/avatars/old.jpg"),
	}, nil)
	store.On("Put", ctx, mock.MatchedBy(func(u storage.Upload) bool {
		return u.Folder == avatarsFolder
	})).Return("/storage/avatars/new.jpg", nil)
	userRepo.On("Update", ctx, mock.Anything).Return(nil)
	store.On("Remove", ctx, "/storage/avatars/old.jpg").Return(nil)

	url, err := usecase.UploadAvatar(ctx, userID, storage.Upload{Name: "me.jpg", Content: strings.NewReader("img")})
	require.NoError(t, err)
	require.Equal(t, "/storage/avatars/new.jpg", url)
	store.AssertExpectations(t)
}

func TestUploadAvatar_UpdateFailureRemovesUpload(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockObjectStore)
	usecase := NewProfileUsecase(userRepo, store)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("GetByID", ctx, userID).Return(&entities.User{ID: userID}, nil)
	store.On("Put", ctx, mock.Anything).Return("/storage/avatars/new.jpg", nil)
	userRepo.On("Update", ctx, mock.Anything).Return(errors.New("db down"))
	store.On("Remove", ctx, "/storage/avatars/new.jpg").Return(nil)

	_, err := usecase.UploadAvatar(ctx, userID, storage.Upload{Name: "me.jpg", Content: strings.NewReader("img")})
	require.Error(t, err)
	store.AssertExpectations(t)
}
