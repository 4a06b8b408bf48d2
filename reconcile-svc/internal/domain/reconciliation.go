package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("reconciliation not found")
	ErrAlreadyResolved = errors.New("reconciliation already resolved")
	ErrInvalidStatus   = errors.New("status must be open or resolved")
)

const EventConfirmationFailed = "confirmation_failed"

// OrderID accepts the backend's order id as a JSON number or string.
type OrderID string

func (id *OrderID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = OrderID(n.String())
	return nil
}

// CheckoutEvent is the message checkout-svc publishes on the checkout-events topic.
type CheckoutEvent struct {
	Type          string    `json:"type"`
	SessionID     string    `json:"session_id"`
	OrderID       OrderID   `json:"order_id"`
	PaymentMethod string    `json:"payment_method"`
	PaymentID     string    `json:"payment_id"`
	Total         string    `json:"total"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
}

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusResolved
}

// Reconciliation is a payment the provider captured but the ordering backend
// never confirmed. Staff settle it by hand and resolve it.
type Reconciliation struct {
	ID             int64           `json:"id"`
	OrderID        string          `json:"order_id"`
	SessionID      string          `json:"session_id"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentID      string          `json:"payment_id"`
	Total          decimal.Decimal `json:"total"`
	Reason         string          `json:"reason"`
	Status         Status          `json:"status"`
	OccurredAt     time.Time       `json:"occurred_at"`
	CreatedAt      time.Time       `json:"created_at"`
	ResolvedAt     *time.Time      `json:"resolved_at,omitempty"`
	ResolutionNote string          `json:"resolution_note,omitempty"`
}
