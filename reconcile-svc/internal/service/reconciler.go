package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tandoor-ordering/reconcile-svc/internal/domain"
)

var ErrInvalidEvent = errors.New("invalid checkout event")

type Reconciler struct {
	repo   Repository
	logger *zap.Logger
	clock  func() time.Time
}

func NewReconciler(repo Repository, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{repo: repo, logger: logger, clock: time.Now}
}

func (r *Reconciler) WithClock(clock func() time.Time) *Reconciler {
	r.clock = clock
	return r
}

// Record stores a confirmation_failed event. Other event types are ignored.
// It reports whether a new reconciliation was opened; a redelivered event
// returns false.
func (r *Reconciler) Record(ctx context.Context, event domain.CheckoutEvent) (bool, error) {
	if event.Type != domain.EventConfirmationFailed {
		return false, nil
	}
	if strings.TrimSpace(string(event.OrderID)) == "" {
		return false, fmt.Errorf("%w: missing order_id", ErrInvalidEvent)
	}

	total := decimal.Zero
	if event.Total != "" {
		parsed, err := decimal.NewFromString(event.Total)
		if err != nil {
			return false, fmt.Errorf("%w: total %q", ErrInvalidEvent, event.Total)
		}
		total = parsed
	}
	occurredAt := event.Timestamp
	if occurredAt.IsZero() {
		occurredAt = r.clock()
	}

	rec := &domain.Reconciliation{
		OrderID:       string(event.OrderID),
		SessionID:     event.SessionID,
		PaymentMethod: event.PaymentMethod,
		PaymentID:     event.PaymentID,
		Total:         total,
		Reason:        event.Reason,
		OccurredAt:    occurredAt,
	}
	created, err := r.repo.Insert(ctx, rec)
	if err != nil {
		return false, fmt.Errorf("store reconciliation for order %s: %w", rec.OrderID, err)
	}
	if created {
		r.logger.Warn("payment needs reconciliation",
			zap.Int64("id", rec.ID),
			zap.String("order_id", rec.OrderID),
			zap.String("payment_method", rec.PaymentMethod),
			zap.String("payment_id", rec.PaymentID),
			zap.String("total", rec.Total.StringFixed(2)))
	}
	return created, nil
}

func (r *Reconciler) List(ctx context.Context, status domain.Status) ([]domain.Reconciliation, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return r.repo.List(ctx, status)
}

func (r *Reconciler) Resolve(ctx context.Context, id int64, note string) (*domain.Reconciliation, error) {
	rec, err := r.repo.Resolve(ctx, id, strings.TrimSpace(note), r.clock())
	if err != nil {
		return nil, err
	}
	r.logger.Info("reconciliation resolved", zap.Int64("id", id), zap.String("order_id", rec.OrderID))
	return rec, nil
}
