package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tandoor-ordering/checkout-svc/internal/backend"
	"tandoor-ordering/checkout-svc/internal/domain"
)

const providerStatusSucceeded = "succeeded"

type CheckoutForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PickupTime string `json:"pickup_time"`
}

func (f CheckoutForm) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(f.Email) == "" {
		fields["email"] = "email is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		fields["email"] = "email is not valid"
	}
	if strings.TrimSpace(f.Phone) == "" {
		fields["phone"] = "phone is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (f CheckoutForm) Customer() domain.Customer {
	return domain.Customer{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.TrimSpace(f.Email),
		Phone: strings.TrimSpace(f.Phone),
	}
}

type PaymentIntent struct {
	OrderID      domain.OrderID `json:"order_id"`
	Amount       string         `json:"amount"`
	ClientSecret string         `json:"client_secret,omitempty"`
	Fallback     bool           `json:"fallback"`
}

// ProviderOutcome is what the payment provider reported to the page.
// PaymentID is the payment intent id, or the token id on the fallback path.
type ProviderOutcome struct {
	Status    string `json:"status"`
	PaymentID string `json:"payment_id"`
	Error     string `json:"error"`
}

// Controller drives the checkout state machine of one browser session at a
// time. Every mutating call holds the session's submission lock.
type Controller struct {
	backend   OrderingBackend
	carts     *CartService
	sessions  SessionStore
	slots     SlotSource
	publisher EventPublisher
	qr        QRGenerator
	settings  *SettingsStore
	logger    *zap.Logger
	lockTTL   time.Duration
	clock     func() time.Time
}

type ControllerDeps struct {
	Backend   OrderingBackend
	Carts     *CartService
	Sessions  SessionStore
	Slots     SlotSource
	Publisher EventPublisher
	QR        QRGenerator
	Settings  *SettingsStore
	Logger    *zap.Logger
}

func NewController(deps ControllerDeps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		backend:   deps.Backend,
		carts:     deps.Carts,
		sessions:  deps.Sessions,
		slots:     deps.Slots,
		publisher: deps.Publisher,
		qr:        deps.QR,
		settings:  deps.Settings,
		logger:    logger,
		lockTTL:   45 * time.Second,
		clock:     time.Now,
	}
}

func (c *Controller) WithClock(clock func() time.Time) *Controller {
	c.clock = clock
	return c
}

func (c *Controller) StartSession(ctx context.Context) (*domain.OrderSession, error) {
	session := domain.NewOrderSession(uuid.NewString(), c.clock())
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

func (c *Controller) Session(ctx context.Context, sessionID string) (*domain.OrderSession, error) {
	return c.load(ctx, sessionID)
}

// Submit moves the session to OrderCreated. The backend order is created only
// if the session has no order id yet; retries reuse it.
func (c *Controller) Submit(ctx context.Context, sessionID string, form CheckoutForm, method domain.PaymentMethod) (*domain.OrderSession, error) {
	if !c.settings.Get().OrderingEnabled {
		return nil, ErrOrderingDisabled
	}
	if !method.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"payment_method": "must be card or paypal"}}
	}
	if err := form.Validate(); err != nil {
		return nil, err
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

	items, err := c.carts.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	orderType, err := c.carts.LoadOrderType(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Once the backend order exists its customer, order type and pickup time
	// are fixed; a resubmission only picks the payment method again. The cart
	// is cleared on completion, so a cart next to a completed session belongs
	// to a new order.
	var existing domain.OrderID
	terminal := session.State.IsTerminal()
	if !terminal {
		existing, err = c.existingOrder(ctx, session)
		if err != nil {
			return nil, err
		}
	}
	if existing == "" && orderType == domain.OrderTypePickup {
		if err := c.checkPickupTime(ctx, form.PickupTime); err != nil {
			return nil, err
		}
	}
	if terminal {
		if err := c.sessions.ResetSession(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("reset session: %w", err)
		}
		session = domain.NewOrderSession(sessionID, c.clock())
	}
	if !domain.CanTransition(session.State, domain.StateSubmitting) {
		return session, fmt.Errorf("%w: cannot submit from %s", ErrIllegalTransition, session.State)
	}

	customer := form.Customer()
	if err := c.carts.SaveCustomer(ctx, sessionID, customer); err != nil {
		c.logger.Warn("could not save customer profile", zap.String("session_id", sessionID), zap.Error(err))
	}

	if existing == "" || session.OrderType == "" {
		session.Customer = customer
		session.OrderType = orderType
		session.PickupTime = form.PickupTime
	}
	session.PaymentMethod = method
	session.LastError = ""
	if err := c.transition(ctx, session, domain.StateSubmitting); err != nil {
		return nil, err
	}

	orderID, err := c.ensureOrder(ctx, session, items)
	if err != nil {
		session.LastError = err.Error()
		if terr := c.transition(ctx, session, domain.StateCreationFailed); terr != nil {
			c.logger.Error("could not record failed order creation", zap.String("session_id", sessionID), zap.Error(terr))
		}
		return session, err
	}
	session.OrderID = orderID
	if err := c.transition(ctx, session, domain.StateOrderCreated); err != nil {
		return nil, err
	}
	return session, nil
}

// BeginCardPayment requests a payment intent for the session's order. When the
// backend cannot create one the intent comes back with Fallback set and the
// card must be settled with CompleteTokenPayment.
func (c *Controller) BeginCardPayment(ctx context.Context, sessionID string) (*PaymentIntent, error) {
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
	if !domain.CanTransition(session.State, domain.StatePaymentPending) {
		return nil, fmt.Errorf("%w: cannot start payment from %s", ErrIllegalTransition, session.State)
	}

	amount := c.orderTotals(session).Total
	intent := &PaymentIntent{OrderID: session.OrderID, Amount: amount}

	secret, err := c.backend.CreatePaymentIntent(ctx, backend.PaymentIntentRequest{
		OrderID:       session.OrderID,
		Amount:        json.Number(amount),
		CustomerName:  session.Customer.Name,
		CustomerEmail: session.Customer.Email,
	})
	if err == nil && secret == "" {
		err = fmt.Errorf("create payment intent: %w: empty client secret", backend.ErrUnavailable)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		unavailable := &BackendUnavailableError{Op: "create payment intent", Err: err}
		c.logger.Warn("payment intent unavailable, switching to direct tokenization",
			zap.String("session_id", sessionID),
			zap.String("order_id", string(session.OrderID)),
			zap.Error(unavailable))
		session.Fallback = true
		intent.Fallback = true
	} else {
		session.Fallback = false
		intent.ClientSecret = secret
	}

	session.PaymentMethod = domain.PaymentMethodCard
	if err := c.transition(ctx, session, domain.StatePaymentPending); err != nil {
		return nil, err
	}
	return intent, nil
}

// CompleteCardPayment settles a card payment confirmed against a payment intent.
func (c *Controller) CompleteCardPayment(ctx context.Context, sessionID string, outcome ProviderOutcome) (*domain.OrderSession, error) {
	return c.settleCard(ctx, sessionID, outcome, false)
}

// CompleteTokenPayment settles the fallback path where the page tokenized the
// card directly. It confirms against the existing order and never creates one.
func (c *Controller) CompleteTokenPayment(ctx context.Context, sessionID string, outcome ProviderOutcome) (*domain.OrderSession, error) {
	return c.settleCard(ctx, sessionID, outcome, true)
}

func (c *Controller) settleCard(ctx context.Context, sessionID string, outcome ProviderOutcome, viaToken bool) (*domain.OrderSession, error) {
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
	if session.State != domain.StatePaymentPending {
		return session, fmt.Errorf("%w: no card payment pending (state %s)", ErrIllegalTransition, session.State)
	}
	if viaToken != session.Fallback {
		if viaToken {
			return session, ErrFallbackNotActive
		}
		return session, fmt.Errorf("%w: payment intent was not created, settle with a card token", ErrIllegalTransition)
	}

	succeeded := outcome.Error == "" && outcome.Status == providerStatusSucceeded
	if viaToken {
		succeeded = outcome.Error == "" && outcome.PaymentID != ""
	}
	if !succeeded {
		return c.failPayment(ctx, session, outcome)
	}

	err = c.backend.ConfirmPayment(ctx, backend.ConfirmPaymentRequest{
		OrderID:       session.OrderID,
		PaymentMethod: domain.PaymentMethodCard,
		PaymentID:     outcome.PaymentID,
	})
	if err != nil {
		c.reportUnconfirmed(ctx, session, outcome.PaymentID, err)
	}

	if err := c.complete(ctx, session, ""); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Controller) Receipt(ctx context.Context, sessionID string) (*domain.Receipt, error) {
	session, err := c.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != domain.StateCompleted || session.Receipt == nil {
		return nil, ErrReceiptNotReady
	}
	return session.Receipt, nil
}

// ReceiptQRCode renders a PNG QR code pointing at the order status page.
func (c *Controller) ReceiptQRCode(ctx context.Context, sessionID string) ([]byte, error) {
	receipt, err := c.Receipt(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.qr == nil || receipt.OrderID == "" {
		return nil, ErrReceiptNotReady
	}
	return c.qr.Generate(receipt.OrderID)
}

func (c *Controller) failPayment(ctx context.Context, session *domain.OrderSession, outcome ProviderOutcome) (*domain.OrderSession, error) {
	message := outcome.Error
	if message == "" {
		message = fmt.Sprintf("payment was not completed (status %q)", outcome.Status)
	}
	session.LastError = message
	if err := c.transition(ctx, session, domain.StatePaymentFailed); err != nil {
		return nil, err
	}
	return session, &PaymentProviderError{Message: message}
}

// complete finalizes a paid order. The cart is cleared only after the
// completed state is stored, so it is cleared exactly once.
func (c *Controller) complete(ctx context.Context, session *domain.OrderSession, payerName string) error {
	now := c.clock()
	session.Receipt = BuildReceipt(session, session.Items, c.settings.Get(), payerName, now)
	session.LastError = ""
	if err := c.transition(ctx, session, domain.StateCompleted); err != nil {
		return err
	}

	if err := c.carts.ClearCart(ctx, session.ID); err != nil {
		c.logger.Error("could not clear cart after completion", zap.String("session_id", session.ID), zap.Error(err))
	}

	c.publish(ctx, domain.CheckoutEvent{
		Type:          domain.EventOrderCompleted,
		SessionID:     session.ID,
		OrderID:       session.OrderID,
		PaymentMethod: session.PaymentMethod,
		Total:         session.Receipt.Total,
		Timestamp:     now,
	})
	return nil
}

// ensureOrder returns the session's order id, creating the backend order only
// when none exists.
func (c *Controller) ensureOrder(ctx context.Context, session *domain.OrderSession, items []domain.CartLineItem) (domain.OrderID, error) {
	if len(session.Items) == 0 {
		session.Items = items
	}
	existing, err := c.existingOrder(ctx, session)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	session.Items = items
	totals := c.orderTotals(session)
	orderID, err := c.backend.CreateOrder(ctx, backend.CreateOrderRequest{
		CustomerName:  session.Customer.Name,
		CustomerEmail: session.Customer.Email,
		CustomerPhone: session.Customer.Phone,
		OrderType:     session.OrderType,
		PickupTime:    session.PickupTime,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: session.PaymentMethod,
	})
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return "", fmt.Errorf("%w: %s", ErrOrderCreation, apiErr.Message)
	}
	if err != nil {
		return "", &NetworkError{Op: "create order", Err: err}
	}

	stored, err := c.sessions.ClaimOrderID(ctx, session.ID, orderID)
	if err != nil {
		c.logger.Error("could not store order id", zap.String("session_id", session.ID), zap.String("order_id", string(orderID)), zap.Error(err))
		stored = orderID
	}
	if stored != orderID {
		c.logger.Warn("session already had an order, discarding the new one",
			zap.String("session_id", session.ID),
			zap.String("kept_order_id", string(stored)),
			zap.String("discarded_order_id", string(orderID)))
	}

	c.publish(ctx, domain.CheckoutEvent{
		Type:          domain.EventOrderCreated,
		SessionID:     session.ID,
		OrderID:       stored,
		PaymentMethod: session.PaymentMethod,
		Total:         totals.Total,
		Timestamp:     c.clock(),
	})
	return stored, nil
}

// existingOrder returns the order already created for the session, if any.
func (c *Controller) existingOrder(ctx context.Context, session *domain.OrderSession) (domain.OrderID, error) {
	if session.OrderID != "" {
		return session.OrderID, nil
	}
	existing, err := c.sessions.LoadOrderID(ctx, session.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load order id: %w", err)
	}
	return existing, nil
}

func (c *Controller) checkPickupTime(ctx context.Context, pickupTime string) error {
	if pickupTime == "" {
		return &ValidationError{Fields: map[string]string{"pickup_time": "choose a pickup time"}}
	}
	if c.slots == nil {
		return nil
	}
	result := c.slots.PickupSlots(ctx)
	if !result.AcceptsOrders() {
		return &ValidationError{Fields: map[string]string{"pickup_time": "the kitchen is not taking pickup orders right now"}}
	}
	if !result.Offers(pickupTime) {
		return &ValidationError{Fields: map[string]string{"pickup_time": "the selected pickup time is no longer available"}}
	}
	return nil
}

// reportUnconfirmed records that the provider took the payment but the
// backend did not acknowledge it.
func (c *Controller) reportUnconfirmed(ctx context.Context, session *domain.OrderSession, paymentID string, cause error) {
	c.logger.Warn("backend did not confirm a successful payment",
		zap.String("session_id", session.ID),
		zap.String("order_id", string(session.OrderID)),
		zap.String("payment_method", string(session.PaymentMethod)),
		zap.String("payment_id", paymentID),
		zap.Error(cause))
	c.publish(ctx, domain.CheckoutEvent{
		Type:          domain.EventConfirmationFailed,
		SessionID:     session.ID,
		OrderID:       session.OrderID,
		PaymentMethod: session.PaymentMethod,
		PaymentID:     paymentID,
		Total:         c.orderTotals(session).Total,
		Reason:        cause.Error(),
		Timestamp:     c.clock(),
	})
}

func (c *Controller) orderTotals(session *domain.OrderSession) domain.DisplayTotals {
	return ComputeTotals(session.Items, c.settings.Get().TaxRate).Display()
}

func (c *Controller) transition(ctx context.Context, session *domain.OrderSession, to domain.CheckoutState) error {
	from := session.State
	if !domain.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	session.State = to
	session.UpdatedAt = c.clock()
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		session.State = from
		return fmt.Errorf("save session: %w", err)
	}
	c.logger.Info("checkout transition",
		zap.String("session_id", session.ID),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("order_id", string(session.OrderID)))
	return nil
}

func (c *Controller) load(ctx context.Context, sessionID string) (*domain.OrderSession, error) {
	session, err := c.sessions.LoadSession(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewOrderSession(sessionID, c.clock()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

func (c *Controller) acquire(ctx context.Context, sessionID string) (func(), error) {
	token := uuid.NewString()
	ok, err := c.sessions.AcquireSubmission(ctx, sessionID, token, c.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire submission lock: %w", err)
	}
	if !ok {
		return nil, ErrSubmissionInFlight
	}
	return func() {
		if err := c.sessions.ReleaseSubmission(context.WithoutCancel(ctx), sessionID, token); err != nil {
			c.logger.Warn("could not release submission lock", zap.String("session_id", sessionID), zap.Error(err))
		}
	}, nil
}

func (c *Controller) publish(ctx context.Context, event domain.CheckoutEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishCheckoutEvent(ctx, event); err != nil {
		c.logger.Warn("could not publish checkout event", zap.String("type", event.Type), zap.Error(err))
	}
}
