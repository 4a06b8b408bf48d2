package service

import (
	"context"
	"time"

	"tandoor-ordering/checkout-svc/internal/backend"
	"tandoor-ordering/checkout-svc/internal/domain"
)

// OrderingBackend is the external CRM that owns orders and payments.
type OrderingBackend interface {
	RestaurantHours(ctx context.Context) (*backend.HoursResponse, error)
	CreateOrder(ctx context.Context, req backend.CreateOrderRequest) (domain.OrderID, error)
	CreatePaymentIntent(ctx context.Context, req backend.PaymentIntentRequest) (string, error)
	ConfirmPayment(ctx context.Context, req backend.ConfirmPaymentRequest) error
	VerifyPayPal(ctx context.Context, req backend.VerifyPayPalRequest) error
}

// StateStore is the durable per-browser storage: cart, order type, customer
// profile and the one-time promo flag. Missing keys return domain.ErrNotFound.
type StateStore interface {
	LoadCart(ctx context.Context, sessionID string) ([]domain.CartLineItem, error)
	SaveCart(ctx context.Context, sessionID string, items []domain.CartLineItem) error
	DeleteCart(ctx context.Context, sessionID string) error
	LoadOrderType(ctx context.Context, sessionID string) (domain.OrderType, error)
	SaveOrderType(ctx context.Context, sessionID string, orderType domain.OrderType) error
	DeleteOrderType(ctx context.Context, sessionID string) error
	LoadCustomer(ctx context.Context, sessionID string) (*domain.Customer, error)
	SaveCustomer(ctx context.Context, sessionID string, customer domain.Customer) error
	MarkPromoShown(ctx context.Context, sessionID string) (bool, error)
}

type SessionStore interface {
	LoadSession(ctx context.Context, sessionID string) (*domain.OrderSession, error)
	SaveSession(ctx context.Context, session *domain.OrderSession) error
	// ClaimOrderID stores orderID only if the session has none and returns
	// the id that is stored afterwards.
	ClaimOrderID(ctx context.Context, sessionID string, orderID domain.OrderID) (domain.OrderID, error)
	LoadOrderID(ctx context.Context, sessionID string) (domain.OrderID, error)
	// ResetSession drops the session record and its order id.
	ResetSession(ctx context.Context, sessionID string) error
	AcquireSubmission(ctx context.Context, sessionID, token string, ttl time.Duration) (bool, error)
	ReleaseSubmission(ctx context.Context, sessionID, token string) error
}

type HoursCache interface {
	GetHours(ctx context.Context) (*domain.HoursSnapshot, error)
	SetHours(ctx context.Context, snapshot *domain.HoursSnapshot, ttl time.Duration) error
}

type EventPublisher interface {
	PublishCheckoutEvent(ctx context.Context, event domain.CheckoutEvent) error
}

type QRGenerator interface {
	Generate(orderID domain.OrderID) ([]byte, error)
}

// SlotSource yields the pickup times currently on offer.
type SlotSource interface {
	PickupSlots(ctx context.Context) domain.SlotResult
}

type CheckoutServiceInterface interface {
	StartSession(ctx context.Context) (*domain.OrderSession, error)
	Session(ctx context.Context, sessionID string) (*domain.OrderSession, error)
	Submit(ctx context.Context, sessionID string, form CheckoutForm, method domain.PaymentMethod) (*domain.OrderSession, error)
	BeginCardPayment(ctx context.Context, sessionID string) (*PaymentIntent, error)
	CompleteCardPayment(ctx context.Context, sessionID string, outcome ProviderOutcome) (*domain.OrderSession, error)
	CompleteTokenPayment(ctx context.Context, sessionID string, outcome ProviderOutcome) (*domain.OrderSession, error)
	CreatePayPalOrder(ctx context.Context, sessionID string, form CheckoutForm) (*PayPalOrder, error)
	ApprovePayPal(ctx context.Context, sessionID, paypalOrderID, payerName string) (*domain.OrderSession, error)
	Receipt(ctx context.Context, sessionID string) (*domain.Receipt, error)
	ReceiptQRCode(ctx context.Context, sessionID string) ([]byte, error)
}

type CartServiceInterface interface {
	Summary(ctx context.Context, sessionID string) (*CartSummary, error)
	PersistCart(ctx context.Context, sessionID string, items []domain.CartLineItem) error
	SetOrderType(ctx context.Context, sessionID string, orderType domain.OrderType) error
	LoadCustomer(ctx context.Context, sessionID string) (domain.Customer, error)
	SaveCustomer(ctx context.Context, sessionID string, customer domain.Customer) error
	MarkPromoShown(ctx context.Context, sessionID string) (bool, error)
}

var (
	_ OrderingBackend          = (*backend.Client)(nil)
	_ SlotSource               = (*HoursService)(nil)
	_ CheckoutServiceInterface = (*Controller)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
)
