package domain

import "github.com/shopspring/decimal"

type LineOption struct {
	Value string `json:"value"`
}

type CartLineItem struct {
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Qty     int             `json:"qty"`
	Options []LineOption    `json:"options,omitempty"`
}

// OrderTotals are exact; round only through Display.
type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type DisplayTotals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func (t OrderTotals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal: t.Subtotal.StringFixed(2),
		Tax:      t.Tax.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
}

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == OrderTypePickup || t == OrderTypeDelivery
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
