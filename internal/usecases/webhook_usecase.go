package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/internal/infrastructure/gateway"
	"lizexpress.backend/pkg/logger"
)

// WebhookUsecase applies gateway webhook events to payments. It is the
// second confirmation path next to client-triggered verification, so
// every write here must be idempotent.
type WebhookUsecase struct {
	paymentRepo      repositories.PaymentRepository
	notificationRepo repositories.NotificationRepository
	listing          *ListingUsecase
}

// NewWebhookUsecase creates a new webhook usecase
func NewWebhookUsecase(
	paymentRepo repositories.PaymentRepository,
	notificationRepo repositories.NotificationRepository,
	listing *ListingUsecase,
) *WebhookUsecase {
	return &WebhookUsecase{
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		listing:          listing,
	}
}

// HandleEvent processes a verified webhook event. Unknown events and
// unknown transaction references are acknowledged without action.
func (u *WebhookUsecase) HandleEvent(ctx context.Context, event *gateway.WebhookEvent) error {
	if event.Event != gateway.EventChargeCompleted {
		logger.Debug(ctx, "ignoring webhook event", zap.String("event", event.Event))
		return nil
	}

	payment, err := u.paymentRepo.GetByTxRef(ctx, event.Data.TxRef)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "webhook for unknown transaction", zap.String("tx_ref", event.Data.TxRef))
			return nil
		}
		return err
	}

	if payment.Status != entities.PaymentStatusPending {
		if payment.Status == entities.PaymentStatusSuccessful && payment.ItemID == nil {
			// an earlier confirmer settled the payment but died before
			// publishing the item, this redelivery gets another chance
			if _, err := u.listing.Finalize(ctx, payment.TxRef); err != nil {
				return finalizeAfterChargeError(ctx, payment.TxRef, err)
			}
		}
		return nil
	}

	gatewayTxID := formatGatewayTxID(event.Data.ID)

	if event.Data.Status == "successful" {
		if event.Data.Amount < payment.Amount || event.Data.Currency != payment.Currency {
			logger.Error(ctx, "webhook settlement mismatch",
				zap.String("tx_ref", payment.TxRef),
				zap.Float64("expected_amount", payment.Amount),
				zap.Float64("settled_amount", event.Data.Amount))
			return u.markFailed(ctx, payment, gatewayTxID)
		}
		return u.markSuccessful(ctx, payment, gatewayTxID)
	}

	return u.markFailed(ctx, payment, gatewayTxID)
}

func (u *WebhookUsecase) markSuccessful(ctx context.Context, payment *entities.Payment, gatewayTxID string) error {
	won, err := u.paymentRepo.MarkSuccessful(ctx, payment.TxRef, gatewayTxID)
	if err != nil {
		return err
	}

	// Finalize is idempotent, run it even when client verification won
	// the transition in case it died before publishing the item
	if _, err := u.listing.Finalize(ctx, payment.TxRef); err != nil {
		return finalizeAfterChargeError(ctx, payment.TxRef, err)
	}

	if won {
		if err := u.notificationRepo.Create(ctx, &entities.Notification{
			UserID:  payment.UserID,
			Type:    entities.NotificationPaymentSuccess,
			Title:   "Payment confirmed",
			Content: "Your listing fee was received and your item is awaiting review.",
		}); err != nil {
			logger.Warn(ctx, "failed to create webhook notification", zap.Error(err))
		}
	}
	return nil
}

func (u *WebhookUsecase) markFailed(ctx context.Context, payment *entities.Payment, gatewayTxID string) error {
	if err := u.paymentRepo.UpdateStatus(ctx, payment.TxRef, entities.PaymentStatusFailed, gatewayTxID); err != nil {
		return err
	}
	u.listing.discardDraft(ctx, payment.TxRef)

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		UserID:  payment.UserID,
		Type:    entities.NotificationPaymentFailed,
		Title:   "Payment failed",
		Content: "Your listing fee payment did not go through. Your item was not listed.",
	}); err != nil {
		logger.Warn(ctx, "failed to create webhook notification", zap.Error(err))
	}
	return nil
}
