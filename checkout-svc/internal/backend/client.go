package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"tandoor-ordering/checkout-svc/internal/domain"
)

var ErrUnavailable = errors.New("ordering backend unavailable")

// APIError is a well-formed response with success=false.
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Endpoint + ": request rejected"
	}
	return e.Endpoint + ": " + e.Message
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string, client HTTPClient, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		timeout: timeout,
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        "ordering-backend",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HoursResponse struct {
	Success     bool                  `json:"success"`
	CurrentTime string                `json:"current_time"`
	Hours       domain.WeekHours      `json:"hours"`
	Ordering    domain.OrderingPolicy `json:"ordering"`
}

type CreateOrderRequest struct {
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone"`
	OrderType     domain.OrderType      `json:"order_type"`
	PickupTime    string                `json:"pickup_time"`
	Items         []domain.CartLineItem `json:"items"`
	Subtotal      string                `json:"subtotal"`
	Tax           string                `json:"tax"`
	Total         string                `json:"total"`
	PaymentMethod domain.PaymentMethod  `json:"payment_method"`
}

type PaymentIntentRequest struct {
	OrderID       domain.OrderID `json:"order_id"`
	Amount        json.Number    `json:"amount"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
}

type ConfirmPaymentRequest struct {
	OrderID       domain.OrderID       `json:"order_id"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	PaymentID     string               `json:"payment_id"`
}

type VerifyPayPalRequest struct {
	OrderID       domain.OrderID `json:"order_id"`
	PayPalOrderID string         `json:"paypal_order_id"`
}

func (c *Client) RestaurantHours(ctx context.Context) (*HoursResponse, error) {
	body, err := c.call(ctx, http.MethodGet, "get-restaurant-hours.php", nil)
	if err != nil {
		return nil, err
	}
	var resp HoursResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode restaurant hours: %w", err)
	}
	if !resp.Success {
		return nil, &APIError{Endpoint: "get-restaurant-hours"}
	}
	return &resp, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.OrderID, error) {
	body, err := c.call(ctx, http.MethodPost, "create-order.php", req)
	if err != nil {
		return "", err
	}
	var resp struct {
		envelope
		OrderID domain.OrderID `json:"order_id"`
	}
	if err := decode(body, "create-order", &resp.envelope, &resp); err != nil {
		return "", err
	}
	if resp.OrderID == "" {
		return "", &APIError{Endpoint: "create-order", Message: "response carried no order_id"}
	}
	return resp.OrderID, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (string, error) {
	body, err := c.call(ctx, http.MethodPost, "create-payment-intent.php", req)
	if err != nil {
		return "", err
	}
	var resp struct {
		envelope
		ClientSecret string `json:"clientSecret"`
	}
	if err := decode(body, "create-payment-intent", &resp.envelope, &resp); err != nil {
		return "", err
	}
	if resp.ClientSecret == "" {
		return "", fmt.Errorf("create-payment-intent: %w: response carried no clientSecret", ErrUnavailable)
	}
	return resp.ClientSecret, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) error {
	body, err := c.call(ctx, http.MethodPost, "confirm-payment.php", req)
	if err != nil {
		return err
	}
	var resp envelope
	return decode(body, "confirm-payment", &resp, &resp)
}

func (c *Client) VerifyPayPal(ctx context.Context, req VerifyPayPalRequest) error {
	body, err := c.call(ctx, http.MethodPost, "verify-paypal.php", req)
	if err != nil {
		return err
	}
	var resp envelope
	return decode(body, "verify-paypal", &resp, &resp)
}

// call performs one round trip under the circuit breaker. Only transport
// failures and 5xx responses count against the breaker; a success=false body
// means the backend is reachable.
func (c *Client) call(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", endpoint, err)
		}
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		var reader io.Reader
		if reqBody != nil {
			reader = bytes.NewReader(reqBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reader)
		if err != nil {
			return nil, err
		}
		if reqBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		return data, nil
	})
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w: %v", endpoint, ErrUnavailable, err)
	}
	return body, nil
}

func decode(body []byte, endpoint string, env *envelope, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%s: %w: malformed response: %v", endpoint, ErrUnavailable, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return &APIError{Endpoint: endpoint, Message: msg}
	}
	return nil
}
