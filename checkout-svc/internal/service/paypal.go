package service

import (
	"context"
	"errors"
	"fmt"

	"tandoor-ordering/checkout-svc/internal/backend"
	"tandoor-ordering/checkout-svc/internal/domain"
)

// PayPalOrder is what the PayPal button needs to open its order: the backend
// order id doubles as the purchase unit reference.
type PayPalOrder struct {
	OrderID     domain.OrderID `json:"order_id"`
	ReferenceID string         `json:"reference_id"`
	Description string         `json:"description"`
	Amount      string         `json:"amount"`
	Currency    string         `json:"currency"`
}

// CreatePayPalOrder runs the regular submission with PayPal as the payment
// method. The provider may call this more than once; the order is reused.
func (c *Controller) CreatePayPalOrder(ctx context.Context, sessionID string, form CheckoutForm) (*PayPalOrder, error) {
	session, err := c.Submit(ctx, sessionID, form, domain.PaymentMethodPayPal)
	if err != nil {
		return nil, err
	}
	return &PayPalOrder{
		OrderID:     session.OrderID,
		ReferenceID: string(session.OrderID),
		Description: fmt.Sprintf("%s Order #%s", c.settings.Get().Restaurant.Name, session.OrderID),
		Amount:      c.orderTotals(session).Total,
		Currency:    "USD",
	}, nil
}

// ApprovePayPal verifies a captured PayPal order with the backend. A rejected
// verification fails the payment; an unreachable backend does not, since the
// capture already happened.
func (c *Controller) ApprovePayPal(ctx context.Context, sessionID, paypalOrderID, payerName string) (*domain.OrderSession, error) {
	if paypalOrderID == "" {
		return nil, &ValidationError{Fields: map[string]string{"paypal_order_id": "is required"}}
	}

	release, err := c.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := c.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.OrderID == "" {
		return nil, ErrNoOrder
	}
	if !domain.CanTransition(session.State, domain.StateCompleted) {
		return session, fmt.Errorf("%w: cannot approve from %s", ErrIllegalTransition, session.State)
	}
	session.PaymentMethod = domain.PaymentMethodPayPal

	err = c.backend.VerifyPayPal(ctx, backend.VerifyPayPalRequest{
		OrderID:       session.OrderID,
		PayPalOrderID: paypalOrderID,
	})
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		session.LastError = ErrPaymentVerification.Error()
		if terr := c.transition(ctx, session, domain.StatePaymentFailed); terr != nil {
			return nil, terr
		}
		return session, ErrPaymentVerification
	}
	if err != nil {
		c.reportUnconfirmed(ctx, session, paypalOrderID, err)
	}

	if err := c.complete(ctx, session, payerName); err != nil {
		return nil, err
	}
	return session, nil
}
