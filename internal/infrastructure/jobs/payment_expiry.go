package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	"lizexpress.backend/pkg/logger"
)

const expiryBatchSize = 100

// expiryPaymentRepo is the slice of the payment repository the job needs
type expiryPaymentRepo interface {
	GetStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*entities.Payment, error)
	MarkAbandoned(ctx context.Context, ids []uuid.UUID) error
}

// draftDeleter drops the listing draft held for a payment
type draftDeleter interface {
	Delete(ctx context.Context, txRef string) error
}

// PaymentExpiryJob abandons payments whose checkout never completed and
// drops the listing drafts held for them.
type PaymentExpiryJob struct {
	repo     expiryPaymentRepo
	drafts   draftDeleter
	maxAge   time.Duration
	interval time.Duration
	stop     chan struct{}
}

func NewPaymentExpiryJob(repo expiryPaymentRepo, drafts draftDeleter, maxAge time.Duration) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		repo:     repo,
		drafts:   drafts,
		maxAge:   maxAge,
		interval: time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *PaymentExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting payment expiry job",
		zap.Duration("interval", j.interval),
		zap.Duration("max_age", j.maxAge))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "payment expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "payment expiry job stopped")
			return
		case <-ticker.C:
			j.processStalePayments(ctx)
		}
	}
}

func (j *PaymentExpiryJob) Stop() {
	close(j.stop)
}

func (j *PaymentExpiryJob) processStalePayments(ctx context.Context) {
	stale, err := j.repo.GetStalePending(ctx, time.Now().Add(-j.maxAge), expiryBatchSize)
	if err != nil {
		logger.Error(ctx, "failed to fetch stale payments", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(stale))
	for _, p := range stale {
		ids = append(ids, p.ID)
	}

	if err := j.repo.MarkAbandoned(ctx, ids); err != nil {
		logger.Error(ctx, "failed to abandon stale payments", zap.Error(err))
		return
	}

	for _, p := range stale {
		if err := j.drafts.Delete(ctx, p.TxRef); err != nil {
			logger.Warn(ctx, "failed to drop stale listing draft",
				zap.String("tx_ref", p.TxRef), zap.Error(err))
		}
	}

	logger.Info(ctx, "abandoned stale payments", zap.Int("count", len(stale)))
}
