package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"tandoor-ordering/reconcile-svc/internal/domain"
	"tandoor-ordering/reconcile-svc/internal/storage"
)

type Repository interface {
	Insert(ctx context.Context, rec *domain.Reconciliation) (bool, error)
	List(ctx context.Context, status domain.Status) ([]domain.Reconciliation, error)
	Get(ctx context.Context, id int64) (*domain.Reconciliation, error)
	Resolve(ctx context.Context, id int64, note string, at time.Time) (*domain.Reconciliation, error)
}

// MessageReader is the subset of *kafka.Reader the consumer needs. Messages
// are committed only after they were handled.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ReconcilerInterface interface {
	Record(ctx context.Context, event domain.CheckoutEvent) (bool, error)
	List(ctx context.Context, status domain.Status) ([]domain.Reconciliation, error)
	Resolve(ctx context.Context, id int64, note string) (*domain.Reconciliation, error)
}

var (
	_ Repository          = (*storage.PostgresRepository)(nil)
	_ MessageReader       = (*kafka.Reader)(nil)
	_ ReconcilerInterface = (*Reconciler)(nil)
)
