package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"

	"tandoor-ordering/checkout-svc/internal/domain"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID domain.OrderID) ([]byte, error) {
	qrData := fmt.Sprintf("%s/order-status?order_id=%s", g.BaseURL, url.QueryEscape(string(orderID)))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
