package service

import (
	"github.com/shopspring/decimal"

	"tandoor-ordering/checkout-svc/internal/domain"
)

func LineTotal(item domain.CartLineItem) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
}

// ComputeTotals sums the cart at full precision. Nothing is rounded here;
// OrderTotals.Display rounds to cents.
func ComputeTotals(cart []domain.CartLineItem, taxRate decimal.Decimal) domain.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range cart {
		subtotal = subtotal.Add(LineTotal(item))
	}
	tax := subtotal.Mul(taxRate)
	return domain.OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// TaxLabel renders the rate as shown on the receipt, e.g. "Tax (8.5%)".
func TaxLabel(taxRate decimal.Decimal) string {
	return "Tax (" + taxRate.Mul(decimal.NewFromInt(100)).String() + "%)"
}
