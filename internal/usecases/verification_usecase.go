package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/internal/infrastructure/storage"
	"lizexpress.backend/pkg/logger"
)

// VerificationGate decides whether a user must verify their identity
// before listing. Verified users, users with a submission under review
// and users who have listed before all pass.
type VerificationGate struct {
	itemRepo   repositories.ItemRepository
	failClosed bool
}

// NewVerificationGate creates the listing verification gate. failClosed
// controls what happens when the check itself errors: open lets the
// listing proceed, closed blocks it.
func NewVerificationGate(itemRepo repositories.ItemRepository, failClosed bool) *VerificationGate {
	return &VerificationGate{itemRepo: itemRepo, failClosed: failClosed}
}

// Status evaluates the gate for a user
func (g *VerificationGate) Status(ctx context.Context, user *entities.User) (*entities.VerificationGateStatus, error) {
	status := &entities.VerificationGateStatus{
		IsVerified:   user.IsVerified,
		HasSubmitted: user.VerificationSubmitted,
	}
	if status.IsVerified || status.HasSubmitted {
		return status, nil
	}

	count, err := g.itemRepo.CountByUserID(ctx, user.ID)
	if err != nil {
		if g.failClosed {
			return nil, err
		}
		logger.Warn(ctx, "verification gate check failed, letting listing proceed",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return status, nil
	}

	status.NeedsVerification = count == 0
	return status, nil
}

// VerificationUsecase handles identity document submission and lookup
type VerificationUsecase struct {
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
	notificationRepo repositories.NotificationRepository
	store            storage.ObjectStore
	gate             *VerificationGate
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
	notificationRepo repositories.NotificationRepository,
	store storage.ObjectStore,
	gate *VerificationGate,
) *VerificationUsecase {
	return &VerificationUsecase{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		notificationRepo: notificationRepo,
		store:            store,
		gate:             gate,
	}
}

// Submit stores the three identity documents and queues the submission
// for admin review. A user with a pending or approved submission cannot
// submit again.
func (u *VerificationUsecase) Submit(ctx context.Context, userID uuid.UUID, idFront, idBack, selfie storage.Upload) (*entities.Verification, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, domainerrors.NewError("account already verified", domainerrors.ErrAlreadyExists)
	}

	latest, err := u.verificationRepo.GetLatestByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if latest != nil && latest.Status == entities.VerificationStatusPending {
		return nil, domainerrors.NewError("a submission is already under review", domainerrors.ErrAlreadyExists)
	}

	idFront.Folder = verificationsFolder
	idBack.Folder = verificationsFolder
	selfie.Folder = verificationsFolder
	urls, err := u.store.PutAll(ctx, []storage.Upload{idFront, idBack, selfie})
	if err != nil {
		return nil, domainerrors.NewError("could not store verification documents", domainerrors.ErrUploadFailed)
	}

	verification := &entities.Verification{
		UserID:       userID,
		IDFrontImage: urls[0],
		IDBackImage:  urls[1],
		SelfieImage:  urls[2],
		Status:       entities.VerificationStatusPending,
	}
	if err := u.verificationRepo.Create(ctx, verification); err != nil {
		return nil, err
	}

	user.VerificationSubmitted = true
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		UserID:  userID,
		Type:    entities.NotificationVerificationSubmitted,
		Title:   "Verification submitted",
		Content: "Your identity documents were received and are under review.",
	}); err != nil {
		logger.Warn(ctx, "failed to create verification notification", zap.Error(err))
	}

	logger.Info(ctx, "verification submitted", zap.String("user_id", userID.String()))
	return verification, nil
}

// Status reports the listing gate decision for a user
func (u *VerificationUsecase) Status(ctx context.Context, userID uuid.UUID) (*entities.VerificationGateStatus, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.gate.Status(ctx, user)
}

// Latest returns the user's most recent submission, if any
func (u *VerificationUsecase) Latest(ctx context.Context, userID uuid.UUID) (*entities.Verification, error) {
	return u.verificationRepo.GetLatestByUserID(ctx, userID)
}
