package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tandoor-ordering/checkout-svc/internal/domain"
)

type CartSummary struct {
	Items  []domain.CartLineItem `json:"items"`
	Totals domain.DisplayTotals  `json:"totals"`
}

// CartService owns the cart lifecycle: persisted on the menu page, loaded at
// checkout entry and cleared once at completion.
type CartService struct {
	store    StateStore
	settings *SettingsStore
}

func NewCartService(store StateStore, settings *SettingsStore) *CartService {
	return &CartService{store: store, settings: settings}
}

func (s *CartService) LoadCart(ctx context.Context, sessionID string) ([]domain.CartLineItem, error) {
	items, err := s.store.LoadCart(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &RedirectError{Target: s.settings.Get().CartPage, Err: ErrCartNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, &RedirectError{Target: s.settings.Get().CartPage, Err: ErrEmptyCart}
	}
	return items, nil
}

func (s *CartService) PersistCart(ctx context.Context, sessionID string, items []domain.CartLineItem) error {
	if err := validateCart(items); err != nil {
		return err
	}
	return s.store.SaveCart(ctx, sessionID, items)
}

// ClearCart drops the cart and the order type selection.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.store.DeleteCart(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	if err := s.store.DeleteOrderType(ctx, sessionID); err != nil {
		return fmt.Errorf("clear order type: %w", err)
	}
	return nil
}

func (s *CartService) Summary(ctx context.Context, sessionID string) (*CartSummary, error) {
	items, err := s.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	totals := ComputeTotals(items, s.settings.Get().TaxRate)
	return &CartSummary{Items: items, Totals: totals.Display()}, nil
}

func (s *CartService) LoadOrderType(ctx context.Context, sessionID string) (domain.OrderType, error) {
	orderType, err := s.store.LoadOrderType(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", &RedirectError{Target: s.settings.Get().MenuPage, Err: ErrOrderTypeNotSelected}
	}
	if err != nil {
		return "", fmt.Errorf("load order type: %w", err)
	}
	return orderType, nil
}

func (s *CartService) SetOrderType(ctx context.Context, sessionID string, orderType domain.OrderType) error {
	if !orderType.Valid() {
		return &ValidationError{Fields: map[string]string{"order_type": "must be pickup or delivery"}}
	}
	return s.store.SaveOrderType(ctx, sessionID, orderType)
}

// LoadCustomer returns an empty profile when none was saved.
func (s *CartService) LoadCustomer(ctx context.Context, sessionID string) (domain.Customer, error) {
	customer, err := s.store.LoadCustomer(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Customer{}, nil
	}
	if err != nil {
		return domain.Customer{}, fmt.Errorf("load customer: %w", err)
	}
	return *customer, nil
}

func (s *CartService) SaveCustomer(ctx context.Context, sessionID string, customer domain.Customer) error {
	return s.store.SaveCustomer(ctx, sessionID, customer)
}

// MarkPromoShown reports whether the promo had already been shown before this call.
func (s *CartService) MarkPromoShown(ctx context.Context, sessionID string) (bool, error) {
	return s.store.MarkPromoShown(ctx, sessionID)
}

func validateCart(items []domain.CartLineItem) error {
	fields := map[string]string{}
	if len(items) == 0 {
		fields["items"] = "cart must contain at least one item"
	}
	for i, item := range items {
		key := fmt.Sprintf("items[%d]", i)
		switch {
		case strings.TrimSpace(item.Name) == "":
			fields[key] = "name is required"
		case item.Price.IsNegative():
			fields[key] = "price must not be negative"
		case item.Qty < 1:
			fields[key] = "qty must be at least 1"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
