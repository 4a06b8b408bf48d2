package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tandoor-ordering/checkout-svc/internal/backend"
	"tandoor-ordering/checkout-svc/internal/domain"
	"tandoor-ordering/checkout-svc/internal/service"
)

type Handler struct {
	Checkout service.CheckoutServiceInterface
	Carts    service.CartServiceInterface
	Slots    service.SlotSource
	Settings *service.SettingsStore
	Logger   *zap.Logger
}

func NewHandler(checkout service.CheckoutServiceInterface, carts service.CartServiceInterface, slots service.SlotSource, settings *service.SettingsStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Checkout: checkout,
		Carts:    carts,
		Slots:    slots,
		Settings: settings,
		Logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/checkout/settings", h.getSettings).Methods("GET")
	r.HandleFunc("/api/checkout/pickup-slots", h.getPickupSlots).Methods("GET")

	r.HandleFunc("/api/checkout/sessions", h.startSession).Methods("POST")
	s := r.PathPrefix("/api/checkout/sessions/{sid}").Subrouter()
	s.HandleFunc("", h.getSession).Methods("GET")
	s.HandleFunc("/cart", h.getCart).Methods("GET")
	s.HandleFunc("/cart", h.putCart).Methods("PUT")
	s.HandleFunc("/order-type", h.putOrderType).Methods("PUT")
	s.HandleFunc("/customer", h.getCustomer).Methods("GET")
	s.HandleFunc("/customer", h.putCustomer).Methods("PUT")
	s.HandleFunc("/promo", h.markPromo).Methods("POST")

	s.HandleFunc("/submit", h.submit).Methods("POST")
	s.HandleFunc("/card/intent", h.beginCardPayment).Methods("POST")
	s.HandleFunc("/card/result", h.completeCardPayment).Methods("POST")
	s.HandleFunc("/card/token", h.completeTokenPayment).Methods("POST")
	s.HandleFunc("/paypal/order", h.createPayPalOrder).Methods("POST")
	s.HandleFunc("/paypal/approve", h.approvePayPal).Methods("POST")
	s.HandleFunc("/receipt", h.getReceipt).Methods("GET")
	s.HandleFunc("/receipt/qrcode", h.getReceiptQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "checkout-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.Settings.Get()
	resp := map[string]interface{}{
		"ordering_enabled": settings.OrderingEnabled,
		"tax_rate":         settings.TaxRate.String(),
		"tax_label":        service.TaxLabel(settings.TaxRate),
		"restaurant":       settings.Restaurant,
	}
	if !settings.OrderingEnabled {
		resp["notice"] = orderingDisabledNotice(settings)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) getPickupSlots(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Slots.PickupSlots(r.Context()))
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Checkout.StartSession(r.Context())
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	session, err := h.Checkout.Session(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	summary, err := h.Carts.Summary(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) putCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		Items []domain.CartLineItem `json:"items"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Carts.PersistCart(r.Context(), sid, req.Items); err != nil {
		h.respondError(w, err, nil)
		return
	}
	summary, err := h.Carts.Summary(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) putOrderType(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		OrderType domain.OrderType `json:"order_type"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Carts.SetOrderType(r.Context(), sid, req.OrderType); err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	customer, err := h.Carts.LoadCustomer(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *Handler) putCustomer(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	if err := h.Carts.SaveCustomer(r.Context(), sid, customer); err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *Handler) markPromo(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	alreadyShown, err := h.Carts.MarkPromoShown(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"already_shown": alreadyShown})
}

type submitRequest struct {
	service.CheckoutForm
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	session, err := h.Checkout.Submit(r.Context(), sid, req.CheckoutForm, req.PaymentMethod)
	if err != nil {
		h.respondError(w, err, session)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *Handler) beginCardPayment(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	intent, err := h.Checkout.BeginCardPayment(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, intent)
}

func (h *Handler) completeCardPayment(w http.ResponseWriter, r *http.Request) {
	h.settleCard(w, r, h.Checkout.CompleteCardPayment)
}

func (h *Handler) completeTokenPayment(w http.ResponseWriter, r *http.Request) {
	h.settleCard(w, r, h.Checkout.CompleteTokenPayment)
}

func (h *Handler) settleCard(w http.ResponseWriter, r *http.Request, settle func(context.Context, string, service.ProviderOutcome) (*domain.OrderSession, error)) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var outcome service.ProviderOutcome
	if !decodeBody(w, r, &outcome) {
		return
	}
	session, err := settle(r.Context(), sid, outcome)
	if err != nil {
		h.respondError(w, err, session)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *Handler) createPayPalOrder(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var form service.CheckoutForm
	if !decodeBody(w, r, &form) {
		return
	}
	order, err := h.Checkout.CreatePayPalOrder(r.Context(), sid, form)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) approvePayPal(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		PayPalOrderID string `json:"paypal_order_id"`
		PayerName     string `json:"payer_name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	session, err := h.Checkout.ApprovePayPal(r.Context(), sid, req.PayPalOrderID, req.PayerName)
	if err != nil {
		h.respondError(w, err, session)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	receipt, err := h.Checkout.Receipt(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	png, err := h.Checkout.ReceiptQRCode(r.Context(), sid)
	if err != nil {
		h.respondError(w, err, nil)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid := mux.Vars(r)["sid"]
	if _, err := uuid.Parse(sid); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return "", false
	}
	return sid, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func orderingDisabledNotice(settings service.Settings) string {
	return "Coming Soon! Online ordering is not available yet. Please call us at " + settings.Restaurant.Phone + " to place your order."
}

// respondError maps checkout errors to status codes. A non-nil session is
// returned alongside the error so the page can show the current state.
func (h *Handler) respondError(w http.ResponseWriter, err error, session *domain.OrderSession) {
	body := map[string]interface{}{"error": err.Error()}
	if session != nil {
		body["session"] = session
	}

	var (
		validation *service.ValidationError
		redirect   *service.RedirectError
		provider   *service.PaymentProviderError
		network    *service.NetworkError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		body["fields"] = validation.Fields
	case errors.As(err, &redirect):
		status = http.StatusConflict
		body["redirect"] = redirect.Target
	case errors.Is(err, service.ErrOrderingDisabled):
		status = http.StatusForbidden
		body["notice"] = orderingDisabledNotice(h.Settings.Get())
	case errors.Is(err, service.ErrSubmissionInFlight),
		errors.Is(err, service.ErrIllegalTransition),
		errors.Is(err, service.ErrFallbackNotActive):
		status = http.StatusConflict
	case errors.As(err, &provider):
		status = http.StatusPaymentRequired
		body["error"] = provider.Message
		body["clear_payment_input"] = true
	case errors.Is(err, service.ErrPaymentVerification):
		status = http.StatusPaymentRequired
	case errors.Is(err, service.ErrOrderCreation):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &network), errors.Is(err, backend.ErrUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrNoOrder),
		errors.Is(err, service.ErrReceiptNotReady),
		errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	default:
		h.Logger.Error("checkout request failed", zap.Error(err))
		body["error"] = "internal error"
	}
	respondJSON(w, status, body)
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
