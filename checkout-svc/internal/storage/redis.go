package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tandoor-ordering/checkout-svc/internal/domain"
	"tandoor-ordering/checkout-svc/internal/service"
)

// schemaVersion is carried in every key and value. Values written under a
// different version are treated as missing.
const schemaVersion = 1

var keyPrefix = fmt.Sprintf("checkout:v%d:", schemaVersion)

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type RedisStore struct {
	Client     *redis.Client
	CartTTL    time.Duration
	SessionTTL time.Duration
}

func NewRedisStore(client *redis.Client, cartTTL time.Duration) *RedisStore {
	return &RedisStore{Client: client, CartTTL: cartTTL, SessionTTL: cartTTL}
}

func key(kind, sessionID string) string {
	if sessionID == "" {
		return keyPrefix + kind
	}
	return keyPrefix + kind + ":" + sessionID
}

func (s *RedisStore) put(ctx context.Context, k string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", k, err)
	}
	payload, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", k, err)
	}
	if err := s.Client.Set(ctx, k, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", k, err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, k string, v any) error {
	raw, err := s.Client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", k, err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Version != schemaVersion {
		return domain.ErrNotFound
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RedisStore) del(ctx context.Context, keys ...string) error {
	if err := s.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadCart(ctx context.Context, sessionID string) ([]domain.CartLineItem, error) {
	var items []domain.CartLineItem
	if err := s.get(ctx, key("cart", sessionID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, sessionID string, items []domain.CartLineItem) error {
	return s.put(ctx, key("cart", sessionID), items, s.CartTTL)
}

func (s *RedisStore) DeleteCart(ctx context.Context, sessionID string) error {
	return s.del(ctx, key("cart", sessionID))
}

func (s *RedisStore) LoadOrderType(ctx context.Context, sessionID string) (domain.OrderType, error) {
	var orderType domain.OrderType
	if err := s.get(ctx, key("order_type", sessionID), &orderType); err != nil {
		return "", err
	}
	if !orderType.Valid() {
		return "", domain.ErrNotFound
	}
	return orderType, nil
}

func (s *RedisStore) SaveOrderType(ctx context.Context, sessionID string, orderType domain.OrderType) error {
	return s.put(ctx, key("order_type", sessionID), orderType, s.CartTTL)
}

func (s *RedisStore) DeleteOrderType(ctx context.Context, sessionID string) error {
	return s.del(ctx, key("order_type", sessionID))
}

func (s *RedisStore) LoadCustomer(ctx context.Context, sessionID string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := s.get(ctx, key("customer", sessionID), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// SaveCustomer keeps the profile without expiry; it outlives carts.
func (s *RedisStore) SaveCustomer(ctx context.Context, sessionID string, customer domain.Customer) error {
	return s.put(ctx, key("customer", sessionID), customer, 0)
}

func (s *RedisStore) MarkPromoShown(ctx context.Context, sessionID string) (bool, error) {
	set, err := s.Client.SetNX(ctx, key("promo_shown", sessionID), "1", 0).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx promo: %w", err)
	}
	return !set, nil
}

func (s *RedisStore) LoadSession(ctx context.Context, sessionID string) (*domain.OrderSession, error) {
	var session domain.OrderSession
	if err := s.get(ctx, key("session", sessionID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) SaveSession(ctx context.Context, session *domain.OrderSession) error {
	return s.put(ctx, key("session", session.ID), session, s.SessionTTL)
}

func (s *RedisStore) ClaimOrderID(ctx context.Context, sessionID string, orderID domain.OrderID) (domain.OrderID, error) {
	k := key("order_id", sessionID)
	set, err := s.Client.SetNX(ctx, k, string(orderID), s.SessionTTL).Result()
	if err != nil {
		return "", fmt.Errorf("redis setnx order id: %w", err)
	}
	if set {
		return orderID, nil
	}
	return s.LoadOrderID(ctx, sessionID)
}

func (s *RedisStore) LoadOrderID(ctx context.Context, sessionID string) (domain.OrderID, error) {
	id, err := s.Client.Get(ctx, key("order_id", sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get order id: %w", err)
	}
	return domain.OrderID(id), nil
}

func (s *RedisStore) ResetSession(ctx context.Context, sessionID string) error {
	return s.del(ctx, key("session", sessionID), key("order_id", sessionID))
}

// AcquireSubmission takes the in-flight lock for the session. token identifies
// the holder; only the same token can release it.
func (s *RedisStore) AcquireSubmission(ctx context.Context, sessionID, token string, ttl time.Duration) (bool, error) {
	ok, err := s.Client.SetNX(ctx, key("inflight", sessionID), token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx inflight: %w", err)
	}
	return ok, nil
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ReleaseSubmission drops the lock if token still holds it. A lock that
// expired and was taken by another request is left alone.
func (s *RedisStore) ReleaseSubmission(ctx context.Context, sessionID, token string) error {
	if err := releaseScript.Run(ctx, s.Client, []string{key("inflight", sessionID)}, token).Err(); err != nil {
		return fmt.Errorf("redis release inflight: %w", err)
	}
	return nil
}

func (s *RedisStore) GetHours(ctx context.Context) (*domain.HoursSnapshot, error) {
	var snapshot domain.HoursSnapshot
	if err := s.get(ctx, key("hours", ""), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *RedisStore) SetHours(ctx context.Context, snapshot *domain.HoursSnapshot, ttl time.Duration) error {
	return s.put(ctx, key("hours", ""), snapshot, ttl)
}

var (
	_ service.StateStore   = (*RedisStore)(nil)
	_ service.SessionStore = (*RedisStore)(nil)
	_ service.HoursCache   = (*RedisStore)(nil)
)
