package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrOrderingDisabled     = errors.New("online ordering is not available yet")
	ErrSubmissionInFlight   = errors.New("a submission for this checkout is already in progress")
	ErrIllegalTransition    = errors.New("illegal transition of checkout state")
	ErrCartNotFound         = errors.New("no cart stored for this checkout")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrOrderTypeNotSelected = errors.New("order type not selected")
	ErrNoOrder              = errors.New("no order has been created for this checkout")
	ErrFallbackNotActive    = errors.New("direct card tokenization is only available when the payment intent failed")
	ErrPaymentVerification  = errors.New("payment verification failed, please contact support")
	ErrReceiptNotReady      = errors.New("order has not been completed")
	ErrOrderCreation        = errors.New("failed to create order")
)

// ValidationError lists the checkout fields that blocked submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid checkout: " + strings.Join(parts, ", ")
}

// NetworkError is a failed call to the ordering backend that the customer may retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// PaymentProviderError is a card decline or other provider-side failure.
// The card input must be cleared; the order id is kept.
type PaymentProviderError struct {
	Message string
}

func (e *PaymentProviderError) Error() string {
	return "payment failed: " + e.Message
}

type BackendUnavailableError struct {
	Op  string
	Err error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("backend unavailable for %s: %v", e.Op, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error { return e.Err }

// RedirectError tells the page to send the customer elsewhere, e.g. back to
// the menu when there is nothing to check out.
type RedirectError struct {
	Target string
	Err    error
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("%v (redirect to %s)", e.Err, e.Target)
}

func (e *RedirectError) Unwrap() error { return e.Err }
