package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"tandoor-ordering/reconcile-svc/internal/domain"
)

type Consumer struct {
	Reader     MessageReader
	Reconciler ReconcilerInterface
	Logger     *zap.Logger
	// RetryDelay is the pause between attempts to store an event while the
	// database is unavailable.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, reconciler ReconcilerInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader:     reader,
		Reconciler: reconciler,
		Logger:     logger,
		RetryDelay: time.Second,
	}
}

// Start consumes checkout events until ctx is done.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting checkout event consumer")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Logger.Error("error reading message", zap.Error(err))
			if !c.sleep(ctx) {
				return
			}
			continue
		}

		var event domain.CheckoutEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Error("dropping malformed checkout event",
				zap.Int64("offset", message.Offset), zap.Error(err))
		} else if !c.handle(ctx, event) {
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil && ctx.Err() == nil {
			c.Logger.Error("error committing message", zap.Int64("offset", message.Offset), zap.Error(err))
		}
	}
}

// handle records the event, retrying while storage fails. It returns false
// only when ctx ends first.
func (c *Consumer) handle(ctx context.Context, event domain.CheckoutEvent) bool {
	for {
		_, err := c.Reconciler.Record(ctx, event)
		if err == nil {
			return true
		}
		if errors.Is(err, ErrInvalidEvent) {
			c.Logger.Error("dropping invalid checkout event",
				zap.String("type", event.Type), zap.String("session_id", event.SessionID), zap.Error(err))
			return true
		}
		c.Logger.Error("error recording checkout event",
			zap.String("order_id", string(event.OrderID)), zap.Error(err))
		if !c.sleep(ctx) {
			return false
		}
	}
}

func (c *Consumer) sleep(ctx context.Context) bool {
	timer := time.NewTimer(c.RetryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
