package service

import (
	"strings"
	"time"

	"tandoor-ordering/checkout-svc/internal/domain"
)

const asapPickupDisplay = "ASAP (25-35 mins)"

// BuildReceipt snapshots the order for the confirmation page. items must be
// copied before the cart is cleared.
func BuildReceipt(session *domain.OrderSession, items []domain.CartLineItem, settings Settings, payerName string, completedAt time.Time) *domain.Receipt {
	totals := ComputeTotals(items, settings.TaxRate).Display()

	receiptItems := make([]domain.ReceiptItem, 0, len(items))
	for _, item := range items {
		options := make([]string, 0, len(item.Options))
		for _, option := range item.Options {
			options = append(options, option.Value)
		}
		receiptItems = append(receiptItems, domain.ReceiptItem{
			Name:    item.Name,
			Qty:     item.Qty,
			Options: strings.Join(options, ", "),
			Total:   LineTotal(item).StringFixed(2),
		})
	}

	orderType := session.OrderType
	if orderType == "" {
		orderType = domain.OrderTypePickup
	}

	return &domain.Receipt{
		OrderID:           session.OrderID,
		Greeting:          greeting(payerName, session.Customer.Name),
		OrderType:         orderType,
		PickupTimeDisplay: pickupDisplay(session.PickupTime),
		Items:             receiptItems,
		Subtotal:          totals.Subtotal,
		Tax:               totals.Tax,
		TaxLabel:          TaxLabel(settings.TaxRate),
		Total:             totals.Total,
		Restaurant:        settings.Restaurant,
		PaymentMethod:     session.PaymentMethod,
		CompletedAt:       completedAt,
	}
}

func greeting(names ...string) string {
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			return trimmed
		}
	}
	return "Guest"
}

func pickupDisplay(pickupTime string) string {
	if pickupTime == "" || pickupTime == domain.ASAPValue {
		return asapPickupDisplay
	}
	hour, minute, err := domain.ParseClock(pickupTime)
	if err != nil {
		return pickupTime
	}
	return FormatClock(hour, minute)
}
