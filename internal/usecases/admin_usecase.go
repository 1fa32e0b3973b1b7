package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/pkg/logger"
)

// AdminStats is the moderation dashboard summary
type AdminStats struct {
	NewUsersLast7Days    int64 `json:"newUsersLast7Days"`
	PendingItems         int64 `json:"pendingItems"`
	ActiveItems          int64 `json:"activeItems"`
	RejectedItems        int64 `json:"rejectedItems"`
	PendingVerifications int   `json:"pendingVerifications"`
}

// AdminUsecase handles moderation: items, users and verifications
type AdminUsecase struct {
	userRepo         repositories.UserRepository
	itemRepo         repositories.ItemRepository
	verificationRepo repositories.VerificationRepository
	notificationRepo repositories.NotificationRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	verificationRepo repositories.VerificationRepository,
	notificationRepo repositories.NotificationRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:         userRepo,
		itemRepo:         itemRepo,
		verificationRepo: verificationRepo,
		notificationRepo: notificationRepo,
	}
}

// Stats summarizes moderation workload
func (u *AdminUsecase) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}

	newUsers, err := u.userRepo.CountSince(ctx, time.Now().AddDate(0, 0, -7).Unix())
	if err != nil {
		return nil, err
	}
	stats.NewUsersLast7Days = newUsers

	for status, dst := range map[entities.ItemStatus]*int64{
		entities.ItemStatusPending:  &stats.PendingItems,
		entities.ItemStatusActive:   &stats.ActiveItems,
		entities.ItemStatusRejected: &stats.RejectedItems,
	} {
		count, err := u.itemRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		*dst = count
	}

	_, pendingVerifs, err := u.verificationRepo.ListByStatus(ctx, entities.VerificationStatusPending, 1, 0)
	if err != nil {
		return nil, err
	}
	stats.PendingVerifications = pendingVerifs

	return stats, nil
}

// ListUsers searches accounts by email or name
func (u *AdminUsecase) ListUsers(ctx context.Context, search string, limit, offset int) ([]*entities.User, int, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.userRepo.List(ctx, search, limit, offset)
}

// SetUserStatus flags or reactivates an account
func (u *AdminUsecase) SetUserStatus(ctx context.Context, userID uuid.UUID, status entities.UserStatus) error {
	switch status {
	case entities.UserStatusActive, entities.UserStatusFlagged:
	default:
		return domainerrors.BadRequest("unknown user status")
	}
	return u.userRepo.SetStatus(ctx, userID, status)
}

// PendingItems lists items awaiting moderation
func (u *AdminUsecase) PendingItems(ctx context.Context, limit, offset int) ([]*entities.Item, int, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.itemRepo.List(ctx, entities.ItemFilter{Status: entities.ItemStatusPending}, limit, offset)
}

// ApproveItem makes a pending item publicly visible
func (u *AdminUsecase) ApproveItem(ctx context.Context, adminID, itemID uuid.UUID) error {
	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if err := u.itemRepo.Approve(ctx, itemID, adminID); err != nil {
		return err
	}

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		UserID:  item.UserID,
		Type:    entities.NotificationItemApproved,
		Title:   "Item approved",
		Content: fmt.Sprintf("Your item %q is now live on the marketplace.", item.Name),
	}); err != nil {
		logger.Warn(ctx, "failed to create approval notification", zap.Error(err))
	}

	logger.Info(ctx, "item approved",
		zap.String("item_id", itemID.String()),
		zap.String("admin_id", adminID.String()))
	return nil
}

// RejectItem declines a pending item with a reason
func (u *AdminUsecase) RejectItem(ctx context.Context, adminID, itemID uuid.UUID, reason string) error {
	if reason == "" {
		return domainerrors.BadRequest("a rejection reason is required")
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if err := u.itemRepo.Reject(ctx, itemID, adminID, reason); err != nil {
		return err
	}

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		UserID:  item.UserID,
		Type:    entities.NotificationItemRejected,
		Title:   "Item rejected",
		Content: fmt.Sprintf("Your item %q was rejected: %s", item.Name, reason),
	}); err != nil {
		logger.Warn(ctx, "failed to create rejection notification", zap.Error(err))
	}

	logger.Info(ctx, "item rejected",
		zap.String("item_id", itemID.String()),
		zap.String("admin_id", adminID.String()))
	return nil
}

// PendingVerifications lists identity submissions awaiting review
func (u *AdminUsecase) PendingVerifications(ctx context.Context, limit, offset int) ([]*entities.Verification, int, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.verificationRepo.ListByStatus(ctx, entities.VerificationStatusPending, limit, offset)
}

// ReviewVerification records an approve or reject decision. Approval
// marks the account verified.
func (u *AdminUsecase) ReviewVerification(ctx context.Context, adminID, verificationID uuid.UUID, input *entities.ReviewVerificationInput) error {
	switch input.Status {
	case entities.VerificationStatusApproved:
	case entities.VerificationStatusRejected:
		if input.Reason == "" {
			return domainerrors.BadRequest("a rejection reason is required")
		}
	default:
		return domainerrors.BadRequest("decision must be approved or rejected")
	}

	verification, err := u.verificationRepo.GetByID(ctx, verificationID)
	if err != nil {
		return err
	}

	if err := u.verificationRepo.Review(ctx, verificationID, adminID, input.Status, input.Reason); err != nil {
		return err
	}

	content := "Your identity verification was approved."
	if input.Status == entities.VerificationStatusApproved {
		if err := u.userRepo.SetVerified(ctx, verification.UserID, true); err != nil {
			return err
		}
	} else {
		content = fmt.Sprintf("Your identity verification was rejected: %s", input.Reason)
		// allow a fresh submission
		user, err := u.userRepo.GetByID(ctx, verification.UserID)
		if err != nil {
			return err
		}
		user.VerificationSubmitted = false
		if err := u.userRepo.Update(ctx, user); err != nil {
			return err
		}
	}

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		UserID:  verification.UserID,
		Type:    entities.NotificationVerificationReviewed,
		Title:   "Verification reviewed",
		Content: content,
	}); err != nil {
		logger.Warn(ctx, "failed to create verification notification", zap.Error(err))
	}
	return nil
}
