package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/internal/infrastructure/storage"
	"lizexpress.backend/pkg/logger"
	"lizexpress.backend/pkg/utils"
)

// ListingDraftStore holds item payloads between submission and payment
// confirmation.
type ListingDraftStore interface {
	Put(ctx context.Context, txRef string, draft interface{}, expiration time.Duration) error
	Get(ctx context.Context, txRef string, out interface{}) error
	Delete(ctx context.Context, txRef string) error
}

// ListingUsecase drives the payment-gated listing flow. An item row only
// comes into existence once its listing fee is confirmed.
type ListingUsecase struct {
	userRepo         repositories.UserRepository
	itemRepo         repositories.ItemRepository
	paymentRepo      repositories.PaymentRepository
	notificationRepo repositories.NotificationRepository
	uow              repositories.UnitOfWork
	store            storage.ObjectStore
	drafts           ListingDraftStore
	gate             *VerificationGate

	gatewayPublicKey string
	currency         string
	feePercent       float64
	draftTTL         time.Duration
}

// NewListingUsecase creates a new listing usecase
func NewListingUsecase(
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	paymentRepo repositories.PaymentRepository,
	notificationRepo repositories.NotificationRepository,
	uow repositories.UnitOfWork,
	store storage.ObjectStore,
	drafts ListingDraftStore,
	gate *VerificationGate,
	gatewayPublicKey, currency string,
	feePercent float64,
	draftTTL time.Duration,
) *ListingUsecase {
	return &ListingUsecase{
		userRepo:         userRepo,
		itemRepo:         itemRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		uow:              uow,
		store:            store,
		drafts:           drafts,
		gate:             gate,
		gatewayPublicKey: gatewayPublicKey,
		currency:         currency,
		feePercent:       feePercent,
		draftTTL:         draftTTL,
	}
}

// ListingFee computes the fee charged for a listing, rounded to the
// nearest whole unit of currency.
func (u *ListingUsecase) ListingFee(estimatedCost float64) float64 {
	return math.Round(estimatedCost * u.feePercent)
}

// newTxRef builds a unique transaction reference. The random component
// keeps references from colliding under concurrent submissions.
func newTxRef() string {
	return fmt.Sprintf("%s_%d_%s", txRefPrefix, time.Now().UnixMilli(), uuid.New().String())
}

func validCategory(category string) bool {
	for _, c := range entities.ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

func validCondition(condition string) bool {
	switch entities.ItemCondition(condition) {
	case entities.ItemConditionBrandNew, entities.ItemConditionFairlyUsed:
		return true
	}
	return false
}

// Submit validates the listing, uploads its files, raises a pending
// payment and parks the item payload as a draft. Nothing touches the
// items table here.
func (u *ListingUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitListingInput, images []storage.Upload, receipt *storage.Upload) (*entities.SubmitListingResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.ProfileComplete() {
		return nil, domainerrors.NewError(
			fmt.Sprintf("complete your profile first: missing %v", user.MissingProfileFields()),
			domainerrors.ErrProfileIncomplete)
	}

	gateStatus, err := u.gate.Status(ctx, user)
	if err != nil {
		return nil, err
	}
	if gateStatus.NeedsVerification {
		return nil, domainerrors.ErrVerificationRequired
	}

	if !validCategory(input.Category) {
		return nil, domainerrors.BadRequest("unknown category")
	}
	if !validCondition(input.Condition) {
		return nil, domainerrors.BadRequest("condition must be Brand New or Fairly Used")
	}
	if input.EstimatedCost <= 0 {
		return nil, domainerrors.BadRequest("estimated cost must be positive")
	}
	if len(images) == 0 {
		return nil, domainerrors.BadRequest("at least one item image is required")
	}
	if len(images) > entities.MaxItemImages {
		return nil, domainerrors.BadRequest(fmt.Sprintf("at most %d item images are allowed", entities.MaxItemImages))
	}
	if input.ItemLocation == "" || input.ItemState == "" || input.ItemCountry == "" {
		return nil, domainerrors.BadRequest("item location, state and country are required")
	}

	uploads := make([]storage.Upload, 0, len(images)+1)
	for _, img := range images {
		img.Folder = itemImagesFolder
		uploads = append(uploads, img)
	}
	if receipt != nil {
		r := *receipt
		r.Folder = receiptsFolder
		uploads = append(uploads, r)
	}

	urls, err := u.store.PutAll(ctx, uploads)
	if err != nil {
		return nil, domainerrors.NewError("could not store listing files", domainerrors.ErrUploadFailed)
	}

	imageURLs := urls[:len(images)]
	receiptURL := ""
	if receipt != nil {
		receiptURL = urls[len(images)]
	}

	draft := &entities.ListingDraft{
		UserID:        userID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Condition:     input.Condition,
		EstimatedCost: input.EstimatedCost,
		SwapFor:       input.SwapFor,
		Location:      input.Location,
		ItemLocation:  input.ItemLocation,
		ItemState:     input.ItemState,
		ItemCountry:   input.ItemCountry,
		Images:        imageURLs,
		ReceiptImage:  receiptURL,
	}
	if input.BuyingPrice > 0 {
		draft.BuyingPrice = &input.BuyingPrice
	}

	txRef := newTxRef()
	amount := u.ListingFee(input.EstimatedCost)

	payment := &entities.Payment{
		TxRef:    txRef,
		UserID:   userID,
		Amount:   amount,
		Currency: u.currency,
		Status:   entities.PaymentStatusPending,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		u.rollbackUploads(ctx, urls)
		return nil, err
	}

	if err := u.drafts.Put(ctx, txRef, draft, u.draftTTL); err != nil {
		u.rollbackUploads(ctx, urls)
		return nil, err
	}

	logger.Info(ctx, "listing submitted, awaiting payment",
		zap.String("tx_ref", txRef),
		zap.String("user_id", userID.String()),
		zap.Float64("amount", amount))

	resp := &entities.SubmitListingResponse{
		TxRef:            txRef,
		Amount:           amount,
		Currency:         u.currency,
		GatewayPublicKey: u.gatewayPublicKey,
		CustomerEmail:    user.Email,
		CustomerName:     user.FullName.String,
		CustomerPhone:    user.PhoneNumber.String,
		Description:      fmt.Sprintf("Listing fee for %s", input.Name),
		ExpiresAt:        time.Now().Add(u.draftTTL),
	}
	return resp, nil
}

func (u *ListingUsecase) rollbackUploads(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := u.store.Remove(ctx, url); err != nil {
			logger.Warn(ctx, "failed to remove uploaded file", zap.String("url", url), zap.Error(err))
		}
	}
}

// Finalize turns a confirmed payment's draft into a pending item. It is
// idempotent: a payment already linked to an item returns that item.
func (u *ListingUsecase) Finalize(ctx context.Context, txRef string) (*entities.Item, error) {
	payment, err := u.paymentRepo.GetByTxRef(ctx, txRef)
	if err != nil {
		return nil, err
	}

	if payment.ItemID != nil {
		return u.itemRepo.GetByID(ctx, *payment.ItemID)
	}

	if payment.Status != entities.PaymentStatusSuccessful {
		return nil, domainerrors.ErrPaymentNotConfirmed
	}

	var draft entities.ListingDraft
	if err := u.drafts.Get(ctx, txRef, &draft); err != nil {
		return nil, domainerrors.NewError("listing draft no longer available", domainerrors.ErrDraftExpired)
	}

	item := &entities.Item{
		ID:            utils.GenerateUUIDv7(),
		UserID:        draft.UserID,
		Name:          draft.Name,
		Description:   draft.Description,
		Category:      draft.Category,
		Condition:     entities.ItemCondition(draft.Condition),
		BuyingPrice:   null.Float64FromPtr(draft.BuyingPrice),
		EstimatedCost: draft.EstimatedCost,
		SwapFor:       draft.SwapFor,
		Location:      null.NewString(draft.Location, draft.Location != ""),
		ItemLocation:  draft.ItemLocation,
		ItemState:     draft.ItemState,
		ItemCountry:   draft.ItemCountry,
		Images:        draft.Images,
		ReceiptImage:  null.NewString(draft.ReceiptImage, draft.ReceiptImage != ""),
		Status:        entities.ItemStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.itemRepo.Create(txCtx, item); err != nil {
			return err
		}
		if err := u.paymentRepo.LinkItem(txCtx, txRef, item.ID); err != nil {
			return err
		}
		return u.notificationRepo.Create(txCtx, &entities.Notification{
			UserID:  draft.UserID,
			Type:    entities.NotificationItemSubmitted,
			Title:   "Item submitted for review",
			Content: fmt.Sprintf("Your item %q is awaiting moderation and will go live once approved.", draft.Name),
		})
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// a concurrent finalizer linked its item first; our insert
			// rolled back with the transaction, return theirs
			settled, rerr := u.paymentRepo.GetByTxRef(ctx, txRef)
			if rerr == nil && settled.ItemID != nil {
				return u.itemRepo.GetByID(ctx, *settled.ItemID)
			}
		}
		return nil, err
	}

	if err := u.drafts.Delete(ctx, txRef); err != nil {
		logger.Warn(ctx, "failed to drop finalized listing draft",
			zap.String("tx_ref", txRef), zap.Error(err))
	}

	logger.Info(ctx, "listing finalized",
		zap.String("tx_ref", txRef),
		zap.String("item_id", item.ID.String()))
	return item, nil
}

// Abandon discards a still-pending submission: the payment row is marked
// abandoned, the draft dropped and its uploaded files removed. Only the
// submitting user may abandon it.
func (u *ListingUsecase) Abandon(ctx context.Context, userID uuid.UUID, txRef string) error {
	payment, err := u.paymentRepo.GetByTxRef(ctx, txRef)
	if err != nil {
		return err
	}
	if payment.UserID != userID {
		return domainerrors.ErrForbidden
	}
	if payment.Status != entities.PaymentStatusPending {
		return domainerrors.ErrInvalidTransition
	}

	if err := u.paymentRepo.UpdateStatus(ctx, txRef, entities.PaymentStatusAbandoned, ""); err != nil {
		return err
	}

	var draft entities.ListingDraft
	if err := u.drafts.Get(ctx, txRef, &draft); err == nil {
		urls := append([]string{}, draft.Images...)
		if draft.ReceiptImage != "" {
			urls = append(urls, draft.ReceiptImage)
		}
		u.rollbackUploads(ctx, urls)
	}

	if err := u.drafts.Delete(ctx, txRef); err != nil {
		logger.Warn(ctx, "failed to drop abandoned listing draft",
			zap.String("tx_ref", txRef), zap.Error(err))
	}
	return nil
}

// discardDraft drops the draft and its files after a failed payment
func (u *ListingUsecase) discardDraft(ctx context.Context, txRef string) {
	var draft entities.ListingDraft
	if err := u.drafts.Get(ctx, txRef, &draft); err == nil {
		urls := append([]string{}, draft.Images...)
		if draft.ReceiptImage != "" {
			urls = append(urls, draft.ReceiptImage)
		}
		u.rollbackUploads(ctx, urls)
	}
	if err := u.drafts.Delete(ctx, txRef); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Warn(ctx, "failed to drop listing draft",
			zap.String("tx_ref", txRef), zap.Error(err))
	}
}
