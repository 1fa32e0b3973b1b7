package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/internal/infrastructure/gateway"
	"lizexpress.backend/pkg/logger"
)

// PaymentUsecase confirms listing fee charges against the gateway. The
// client never decides a payment's outcome: either this verification or
// the webhook does.
type PaymentUsecase struct {
	paymentRepo      repositories.PaymentRepository
	notificationRepo repositories.NotificationRepository
	gatewayClient    gateway.Client
	listing          *ListingUsecase

	// devSimulate skips the gateway and treats every pending payment
	// as settled. Only for local development, never production.
	devSimulate bool
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	paymentRepo repositories.PaymentRepository,
	notificationRepo repositories.NotificationRepository,
	gatewayClient gateway.Client,
	listing *ListingUsecase,
	devSimulate bool,
) *PaymentUsecase {
	return &PaymentUsecase{
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		gatewayClient:    gatewayClient,
		listing:          listing,
		devSimulate:      devSimulate,
	}
}

// Verify checks a transaction with the gateway and, on success,
// finalizes the held listing. Safe to call repeatedly.
func (u *PaymentUsecase) Verify(ctx context.Context, userID uuid.UUID, txRef string) (*entities.VerifyPaymentResponse, error) {
	payment, err := u.paymentRepo.GetByTxRef(ctx, txRef)
	if err != nil {
		return nil, err
	}
	if payment.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	switch payment.Status {
	case entities.PaymentStatusSuccessful:
		// already confirmed, return the linked item if finalized
		item, err := u.listing.Finalize(ctx, txRef)
		if err != nil {
			return nil, finalizeAfterChargeError(ctx, txRef, err)
		}
		return &entities.VerifyPaymentResponse{TxRef: txRef, Status: entities.PaymentStatusSuccessful, Item: item}, nil
	case entities.PaymentStatusAbandoned:
		return &entities.VerifyPaymentResponse{TxRef: txRef, Status: entities.PaymentStatusAbandoned, Message: "payment expired"}, nil
	case entities.PaymentStatusFailed:
		return &entities.VerifyPaymentResponse{TxRef: txRef, Status: entities.PaymentStatusFailed, Message: "payment failed"}, nil
	}

	if u.devSimulate {
		logger.Warn(ctx, "simulating gateway confirmation", zap.String("tx_ref", txRef))
		return u.confirm(ctx, payment, "simulated")
	}

	result, err := u.gatewayClient.VerifyTransaction(ctx, txRef)
	if err != nil {
		return nil, domainerrors.NewError("could not verify payment with gateway", domainerrors.ErrPaymentNotConfirmed)
	}

	if !result.Successful {
		// terminal gateway states settle the payment; anything else
		// stays pending for a later retry or the webhook
		if result.RawStatus == "failed" {
			return u.fail(ctx, payment, result.GatewayTxID)
		}
		return &entities.VerifyPaymentResponse{
			TxRef:   txRef,
			Status:  entities.PaymentStatusPending,
			Message: fmt.Sprintf("payment not settled yet (gateway status %q)", result.RawStatus),
		}, nil
	}

	if result.Amount < payment.Amount || result.Currency != payment.Currency {
		logger.Error(ctx, "gateway settlement mismatch",
			zap.String("tx_ref", txRef),
			zap.Float64("expected_amount", payment.Amount),
			zap.Float64("settled_amount", result.Amount),
			zap.String("expected_currency", payment.Currency),
			zap.String("settled_currency", result.Currency))
		return u.fail(ctx, payment, result.GatewayTxID)
	}

	return u.confirm(ctx, payment, result.GatewayTxID)
}

func (u *PaymentUsecase) confirm(ctx context.Context, payment *entities.Payment, gatewayTxID string) (*entities.VerifyPaymentResponse, error) {
	won, err := u.paymentRepo.MarkSuccessful(ctx, payment.TxRef, gatewayTxID)
	if err != nil {
		return nil, err
	}
	if !won {
		// webhook or a concurrent verify settled it first
		settled, err := u.paymentRepo.GetByTxRef(ctx, payment.TxRef)
		if err != nil {
			return nil, err
		}
		if settled.Status != entities.PaymentStatusSuccessful {
			return &entities.VerifyPaymentResponse{
				TxRef:   payment.TxRef,
				Status:  settled.Status,
				Message: "payment already settled",
			}, nil
		}
	}
	payment.Status = entities.PaymentStatusSuccessful

	item, err := u.listing.Finalize(ctx, payment.TxRef)
	if err != nil {
		return nil, finalizeAfterChargeError(ctx, payment.TxRef, err)
	}

	if won {
		if err := u.notificationRepo.Create(ctx, &entities.Notification{
			UserID:  payment.UserID,
			Type:    entities.NotificationPaymentSuccess,
			Title:   "Payment confirmed",
			Content: fmt.Sprintf("Your listing fee of %.0f %s was received.", payment.Amount, payment.Currency),
		}); err != nil {
			logger.Warn(ctx, "failed to create payment notification", zap.Error(err))
		}
	}

	return &entities.VerifyPaymentResponse{TxRef: payment.TxRef, Status: entities.PaymentStatusSuccessful, Item: item}, nil
}

// finalizeAfterChargeError logs the paid-but-unlisted gap for manual
// reconciliation and wraps it for the client.
func finalizeAfterChargeError(ctx context.Context, txRef string, err error) error {
	logger.Error(ctx, "payment settled but listing publication failed, needs reconciliation",
		zap.String("tx_ref", txRef), zap.Error(err))
	return domainerrors.FinalizeAfterCharge(txRef, err)
}

func (u *PaymentUsecase) fail(ctx context.Context, payment *entities.Payment, gatewayTxID string) (*entities.VerifyPaymentResponse, error) {
	if err := u.paymentRepo.UpdateStatus(ctx, payment.TxRef, entities.PaymentStatusFailed, gatewayTxID); err != nil {
		return nil, err
	}
	u.listing.discardDraft(ctx, payment.TxRef)

	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		UserID:  payment.UserID,
		Type:    entities.NotificationPaymentFailed,
		Title:   "Payment failed",
		Content: "Your listing fee payment did not go through. Your item was not listed.",
	}); err != nil {
		logger.Warn(ctx, "failed to create payment notification", zap.Error(err))
	}

	return &entities.VerifyPaymentResponse{TxRef: payment.TxRef, Status: entities.PaymentStatusFailed, Message: "payment failed"}, nil
}

// History returns a user's payments with pagination
func (u *PaymentUsecase) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.paymentRepo.GetByUserID(ctx, userID, limit, offset)
}
