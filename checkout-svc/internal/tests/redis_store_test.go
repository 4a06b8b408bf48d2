package tests

import (
	"context"
	"testing"
	"time"

	"tandoor-ordering/checkout-svc/internal/domain"
	"tandoor-ordering/checkout-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*storage.RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisStore(client, 7*24*time.Hour), mr
}

func TestRedisStore_Cart(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.LoadCart(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.SaveCart(ctx, "s1", sampleCart()))
	assert.True(t, mr.Exists("checkout:v1:cart:s1"))
	assert.Equal(t, 7*24*time.Hour, mr.TTL("checkout:v1:cart:s1"))

	items, err := store.LoadCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Chicken Tikka Masala", items[0].Name)
	assert.True(t, items[0].Price.Equal(sampleCart()[0].Price))
	assert.Equal(t, "Extra rice", items[0].Options[1].Value)

	require.NoError(t, store.DeleteCart(ctx, "s1"))
	_, err = store.LoadCart(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore_UnreadableValuesAreMissing(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		value string
	}{
		{name: "other_schema_version", value: `{"version":2,"data":[{"name":"Naan","price":"3","qty":1}]}`},
		{name: "not_json", value: `garbage`},
		{name: "bare_payload", value: `[{"name":"Naan","price":"3","qty":1}]`},
		{name: "wrong_shape", value: `{"version":1,"data":{"name":"Naan"}}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			require.NoError(t, mr.Set("checkout:v1:cart:s1", testCase.value))
			_, err := store.LoadCart(ctx, "s1")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestRedisStore_OrderTypeAndCustomer(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOrderType(ctx, "s1", domain.OrderTypeDelivery))
	orderType, err := store.LoadOrderType(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderTypeDelivery, orderType)

	require.NoError(t, mr.Set("checkout:v1:order_type:s2", `{"version":1,"data":"drive-through"}`))
	_, err = store.LoadOrderType(ctx, "s2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	customer := domain.Customer{Name: "Asha", Email: "asha@example.com", Phone: "5105550199"}
	require.NoError(t, store.SaveCustomer(ctx, "s1", customer))
	assert.Equal(t, time.Duration(0), mr.TTL("checkout:v1:customer:s1"))

	loaded, err := store.LoadCustomer(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, customer, *loaded)
}

func TestRedisStore_MarkPromoShown(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	shown, err := store.MarkPromoShown(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, shown)

	shown, err = store.MarkPromoShown(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, shown)
}

func TestRedisStore_ClaimOrderIDKeepsFirst(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.LoadOrderID(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id, err := store.ClaimOrderID(ctx, "s1", "42")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderID("42"), id)

	id, err = store.ClaimOrderID(ctx, "s1", "43")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderID("42"), id)

	require.NoError(t, store.ResetSession(ctx, "s1"))
	_, err = store.LoadOrderID(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore_SubmissionLock(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	ok, err := store.AcquireSubmission(ctx, "s1", "first", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.AcquireSubmission(ctx, "s1", "second", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.ReleaseSubmission(ctx, "s1", "first"))
	ok, err = store.AcquireSubmission(ctx, "s1", "second", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(31 * time.Second)
	ok, err = store.AcquireSubmission(ctx, "s1", "third", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "lock must expire if the holder never releases it")
}

func TestRedisStore_ReleaseKeepsNewerHolder(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	ok, err := store.AcquireSubmission(ctx, "s1", "slow", 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)
	ok, err = store.AcquireSubmission(ctx, "s1", "fresh", 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.ReleaseSubmission(ctx, "s1", "slow"))

	held, err := mr.Get("checkout:v1:inflight:s1")
	require.NoError(t, err)
	assert.Equal(t, "fresh", held)

	ok, err = store.AcquireSubmission(ctx, "s1", "other", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.ReleaseSubmission(ctx, "s2", "nobody"))
}

func TestRedisStore_Session(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	now := time.Date(2026, time.October, 19, 14, 3, 0, 0, time.UTC)
	session := domain.NewOrderSession("s1", now)
	session.State = domain.StatePaymentPending
	session.OrderID = "42"
	session.Fallback = true
	session.Items = sampleCart()

	require.NoError(t, store.SaveSession(ctx, session))

	loaded, err := store.LoadSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaymentPending, loaded.State)
	assert.Equal(t, domain.OrderID("42"), loaded.OrderID)
	assert.True(t, loaded.Fallback)
	assert.Len(t, loaded.Items, 2)
	assert.True(t, now.Equal(loaded.CreatedAt))
}

func TestRedisStore_HoursCacheExpires(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	snapshot := &domain.HoursSnapshot{
		Hours:      weekHours("11:00", "22:00"),
		Ordering:   standardPolicy(),
		ServerTime: time.Date(2026, time.October, 19, 21, 3, 0, 0, time.UTC),
		FetchedAt:  time.Date(2026, time.October, 19, 21, 3, 5, 0, time.UTC),
	}
	require.NoError(t, store.SetHours(ctx, snapshot, time.Minute))

	cached, err := store.GetHours(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Hours, cached.Hours)
	assert.True(t, snapshot.ServerTime.Equal(cached.ServerTime))

	mr.FastForward(61 * time.Second)
	_, err = store.GetHours(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
