package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("not found")

type CheckoutState string

const (
	StateIdle           CheckoutState = "idle"
	StateSubmitting     CheckoutState = "submitting"
	StateOrderCreated   CheckoutState = "order_created"
	StatePaymentPending CheckoutState = "payment_pending"
	StateCompleted      CheckoutState = "completed"
	StatePaymentFailed  CheckoutState = "payment_failed"
	StateCreationFailed CheckoutState = "creation_failed"
)

var transitions = map[CheckoutState][]CheckoutState{
	StateIdle: {StateSubmitting},
	// submitting -> submitting only happens when a crashed request left the state behind
	StateSubmitting:     {StateOrderCreated, StateCreationFailed, StateSubmitting},
	StateCreationFailed: {StateSubmitting},
	StateOrderCreated:   {StatePaymentPending, StateSubmitting, StateCompleted, StatePaymentFailed},
	StatePaymentPending: {StateCompleted, StatePaymentFailed, StateSubmitting, StatePaymentPending},
	StatePaymentFailed:  {StateSubmitting, StatePaymentPending, StateCompleted, StatePaymentFailed},
}

func CanTransition(from, to CheckoutState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s CheckoutState) IsTerminal() bool {
	return s == StateCompleted
}

func (s CheckoutState) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodPayPal
}

// OrderID is the backend's order identifier. The CRM returns numeric ids, so
// numeric values go back over the wire as JSON numbers.
type OrderID string

func (id OrderID) MarshalJSON() ([]byte, error) {
	numeric := id != "" && strings.Trim(string(id), "0123456789") == ""
	if numeric && (id[0] != '0' || len(id) == 1) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

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

type OrderSession struct {
	ID            string        `json:"id"`
	State         CheckoutState `json:"state"`
	OrderID       OrderID       `json:"order_id,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Customer      Customer      `json:"customer"`
	OrderType     OrderType     `json:"order_type,omitempty"`
	PickupTime    string        `json:"pickup_time,omitempty"`
	// Items is the cart as it was when the backend order was created.
	Items []CartLineItem `json:"items,omitempty"`
	// Fallback is set when the payment intent could not be created and the
	// card must be settled through direct tokenization.
	Fallback  bool      `json:"fallback,omitempty"`
	LastError string    `json:"last_error,omitempty"`
	Receipt   *Receipt  `json:"receipt,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewOrderSession(id string, now time.Time) *OrderSession {
	return &OrderSession{
		ID:        id,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type ReceiptItem struct {
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Options string `json:"options,omitempty"`
	Total   string `json:"total"`
}

type Restaurant struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone" yaml:"phone"`
}

type Receipt struct {
	OrderID           OrderID       `json:"order_id,omitempty"`
	Greeting          string        `json:"greeting"`
	OrderType         OrderType     `json:"order_type"`
	PickupTimeDisplay string        `json:"pickup_time_display"`
	Items             []ReceiptItem `json:"items"`
	Subtotal          string        `json:"subtotal"`
	Tax               string        `json:"tax"`
	TaxLabel          string        `json:"tax_label"`
	Total             string        `json:"total"`
	Restaurant        Restaurant    `json:"restaurant"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	CompletedAt       time.Time     `json:"completed_at"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderCompleted     = "order_completed"
	EventConfirmationFailed = "confirmation_failed"
)

type CheckoutEvent struct {
	Type          string        `json:"type"`
	SessionID     string        `json:"session_id"`
	OrderID       OrderID       `json:"order_id"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PaymentID     string        `json:"payment_id,omitempty"`
	Total         string        `json:"total,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}
