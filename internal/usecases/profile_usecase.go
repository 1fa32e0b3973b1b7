package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/internal/infrastructure/storage"
)

// ProfileUsecase handles marketplace profile management
type ProfileUsecase struct {
	userRepo repositories.UserRepository
	store    storage.ObjectStore
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(userRepo repositories.UserRepository, store storage.ObjectStore) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo, store: store}
}

// Get returns the profile with its completeness summary
func (u *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (*entities.ProfileResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entities.ProfileResponse{
		User:          user,
		Complete:      user.ProfileComplete(),
		MissingFields: user.MissingProfileFields(),
	}, nil
}

// Update applies profile changes. Empty fields leave the stored value
// untouched.
func (u *ProfileUsecase) Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.ProfileResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyIfSet(&user.FullName, input.FullName)
	applyIfSet(&user.PhoneNumber, input.PhoneNumber)
	applyIfSet(&user.ResidentialAddress, input.ResidentialAddress)
	applyIfSet(&user.DateOfBirth, input.DateOfBirth)
	applyIfSet(&user.Country, input.Country)
	applyIfSet(&user.State, input.State)
	applyIfSet(&user.AvatarURL, input.AvatarURL)

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &entities.ProfileResponse{
		User:          user,
		Complete:      user.ProfileComplete(),
		MissingFields: user.MissingProfileFields(),
	}, nil
}

// UploadAvatar stores a new avatar image and saves its URL
func (u *ProfileUsecase) UploadAvatar(ctx context.Context, userID uuid.UUID, avatar storage.Upload) (string, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	avatar.Folder = avatarsFolder
	url, err := u.store.Put(ctx, avatar)
	if err != nil {
		return "", domainerrors.NewError("could not store avatar", domainerrors.ErrUploadFailed)
	}

	old := user.AvatarURL.String
	user.AvatarURL = null.StringFrom(url)
	if err := u.userRepo.Update(ctx, user); err != nil {
		u.store.Remove(ctx, url)
		return "", err
	}

	if old != "" {
		u.store.Remove(ctx, old)
	}
	return url, nil
}

func applyIfSet(dst *null.String, value string) {
	if value != "" {
		*dst = null.StringFrom(value)
	}
}
