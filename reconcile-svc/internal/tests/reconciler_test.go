package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tandoor-ordering/reconcile-svc/internal/domain"
	"tandoor-ordering/reconcile-svc/internal/mocks"
	"tandoor-ordering/reconcile-svc/internal/service"
)

var reconcileNow = time.Date(2026, time.October, 19, 22, 0, 0, 0, time.UTC)

func newReconciler(t *testing.T) (*service.Reconciler, *mocks.Repository) {
	repo := mocks.NewRepository(t)
	reconciler := service.NewReconciler(repo, zap.NewNop()).
		WithClock(func() time.Time { return reconcileNow })
	return reconciler, repo
}

func TestCheckoutEvent_DecodesPublishedPayload(t *testing.T) {
	payload := `{"type":"confirmation_failed","session_id":"s1","order_id":42,"payment_method":"card",
		"payment_id":"pi_1","total":"32.01","reason":"confirm-payment: timeout","timestamp":"2026-10-19T21:03:00Z"}`

	var event domain.CheckoutEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, domain.OrderID("42"), event.OrderID)
	assert.Equal(t, "pi_1", event.PaymentID)

	require.NoError(t, json.Unmarshal([]byte(`{"order_id":"ORD-7"}`), &event))
	assert.Equal(t, domain.OrderID("ORD-7"), event.OrderID)
}

func TestReconciler_Record(t *testing.T) {
	occurred := time.Date(2026, time.October, 19, 21, 3, 0, 0, time.UTC)

	tests := []struct {
		name         string
		event        domain.CheckoutEvent
		prepareMocks func(repo *mocks.Repository)
		wantCreated  bool
		wantErr      error
	}{
		{
			name: "confirmation_failed_is_stored",
			event: domain.CheckoutEvent{
				Type: domain.EventConfirmationFailed, SessionID: "s1", OrderID: "42",
				PaymentMethod: "card", PaymentID: "pi_1", Total: "32.01", Reason: "timeout", Timestamp: occurred,
			},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("Insert", mock.Anything, mock.MatchedBy(func(rec *domain.Reconciliation) bool {
					return rec.OrderID == "42" && rec.PaymentID == "pi_1" &&
						rec.Total.Equal(decimal.RequireFromString("32.01")) && rec.OccurredAt.Equal(occurred)
				})).Return(true, nil).Once()
			},
			wantCreated: true,
		},
		{
			name:  "redelivered_event",
			event: domain.CheckoutEvent{Type: domain.EventConfirmationFailed, OrderID: "42", PaymentID: "pi_1"},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("Insert", mock.Anything, mock.MatchedBy(func(rec *domain.Reconciliation) bool {
					return rec.Total.IsZero() && rec.OccurredAt.Equal(reconcileNow)
				})).Return(false, nil).Once()
			},
		},
		{
			name:         "other_events_are_ignored",
			event:        domain.CheckoutEvent{Type: "order_completed", OrderID: "42"},
			prepareMocks: func(repo *mocks.Repository) {},
		},
		{
			name:         "missing_order_id",
			event:        domain.CheckoutEvent{Type: domain.EventConfirmationFailed},
			prepareMocks: func(repo *mocks.Repository) {},
			wantErr:      service.ErrInvalidEvent,
		},
		{
			name:         "malformed_total",
			event:        domain.CheckoutEvent{Type: domain.EventConfirmationFailed, OrderID: "42", Total: "$32"},
			prepareMocks: func(repo *mocks.Repository) {},
			wantErr:      service.ErrInvalidEvent,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			reconciler, repo := newReconciler(t)
			testCase.prepareMocks(repo)

			created, err := reconciler.Record(context.Background(), testCase.event)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantCreated, created)
		})
	}
}

func TestReconciler_RecordStorageError(t *testing.T) {
	reconciler, repo := newReconciler(t)
	repo.On("Insert", mock.Anything, mock.Anything).Return(false, errors.New("connection refused")).Once()

	_, err := reconciler.Record(context.Background(), domain.CheckoutEvent{Type: domain.EventConfirmationFailed, OrderID: "42"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidEvent)
}

func TestReconciler_List(t *testing.T) {
	reconciler, repo := newReconciler(t)
	repo.On("List", mock.Anything, domain.StatusOpen).Return([]domain.Reconciliation{{ID: 7}}, nil).Once()

	recs, err := reconciler.List(context.Background(), domain.StatusOpen)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = reconciler.List(context.Background(), "pending")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestReconciler_Resolve(t *testing.T) {
	reconciler, repo := newReconciler(t)
	repo.On("Resolve", mock.Anything, int64(7), "refunded", reconcileNow).
		Return(&domain.Reconciliation{ID: 7, OrderID: "42", Status: domain.StatusResolved}, nil).Once()

	rec, err := reconciler.Resolve(context.Background(), 7, "  refunded ")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, rec.Status)
}
