package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tandoor-ordering/checkout-svc/internal/backend"
	"tandoor-ordering/checkout-svc/internal/domain"
	"tandoor-ordering/checkout-svc/internal/mocks"
	"tandoor-ordering/checkout-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func hoursResponse(currentTime string) *backend.HoursResponse {
	return &backend.HoursResponse{
		Success:     true,
		CurrentTime: currentTime,
		Hours:       weekHours("11:00", "22:00"),
		Ordering:    standardPolicy(),
	}
}

func newHoursService(t *testing.T, be service.OrderingBackend, cache service.HoursCache, localNow time.Time) (*service.HoursService, *service.SettingsStore) {
	settings := service.NewSettingsStore(service.DefaultSettings())
	svc := service.NewHoursService(be, cache, settings, zap.NewNop(), time.Minute).
		WithClock(func() time.Time { return localNow })
	return svc, settings
}

func TestHoursService_UsesBackendClock(t *testing.T) {
	tests := []struct {
		name        string
		currentTime string
	}{
		{name: "naive_local_time", currentTime: "2026-10-19 14:03:00"},
		{name: "rfc3339_utc", currentTime: "2026-10-19T21:03:00Z"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			be := mocks.NewOrderingBackend(t)
			be.On("RestaurantHours", mock.Anything).Return(hoursResponse(testCase.currentTime), nil).Once()

			// The local clock is far off; only the elapsed time since the fetch matters.
			svc, settings := newHoursService(t, be, nil, time.Date(2031, time.January, 1, 3, 0, 0, 0, time.UTC))
			result := svc.PickupSlots(context.Background())

			require.Equal(t, domain.SlotKindAvailable, result.Kind)
			assert.Equal(t, "14:30", result.Slots[1].Value)
			assert.True(t, settings.Get().OrderingEnabled)
		})
	}
}

func TestHoursService_FallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(be *mocks.OrderingBackend)
	}{
		{
			name: "backend_unavailable",
			prepare: func(be *mocks.OrderingBackend) {
				be.On("RestaurantHours", mock.Anything).
					Return(nil, fmt.Errorf("get-restaurant-hours: %w: timeout", backend.ErrUnavailable)).Once()
			},
		},
		{
			name: "invalid_hours",
			prepare: func(be *mocks.OrderingBackend) {
				resp := hoursResponse("2026-10-19 14:03:00")
				resp.Hours = resp.Hours[:5]
				be.On("RestaurantHours", mock.Anything).Return(resp, nil).Once()
			},
		},
		{
			name: "invalid_policy",
			prepare: func(be *mocks.OrderingBackend) {
				resp := hoursResponse("2026-10-19 14:03:00")
				resp.Ordering.SlotIntervalMinutes = 0
				be.On("RestaurantHours", mock.Anything).Return(resp, nil).Once()
			},
		},
		{
			name: "missing_current_time",
			prepare: func(be *mocks.OrderingBackend) {
				be.On("RestaurantHours", mock.Anything).Return(hoursResponse(""), nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			be := mocks.NewOrderingBackend(t)
			testCase.prepare(be)

			svc, settings := newHoursService(t, be, nil, time.Now())
			result := svc.PickupSlots(context.Background())

			assert.Equal(t, service.DefaultSlots(), result)
			assert.False(t, settings.Get().OrderingEnabled)
		})
	}
}

func TestHoursService_CacheHitSkipsBackend(t *testing.T) {
	be := mocks.NewOrderingBackend(t)
	cache := mocks.NewHoursCache(t)

	loc := restaurantLocation(t)
	fetchedAt := time.Date(2031, time.January, 1, 3, 0, 0, 0, time.UTC)
	cache.On("GetHours", mock.Anything).Return(&domain.HoursSnapshot{
		Hours:      weekHours("11:00", "22:00"),
		Ordering:   standardPolicy(),
		ServerTime: time.Date(2026, time.October, 19, 14, 3, 0, 0, loc),
		FetchedAt:  fetchedAt,
	}, nil).Once()

	// Ten minutes after the snapshot was taken the restaurant clock reads 14:13.
	svc, _ := newHoursService(t, be, cache, fetchedAt.Add(10*time.Minute))
	result := svc.PickupSlots(context.Background())

	require.Equal(t, domain.SlotKindAvailable, result.Kind)
	assert.Equal(t, "15:00", result.Slots[1].Value)
	be.AssertNotCalled(t, "RestaurantHours", mock.Anything)
}

func TestHoursService_RefreshFillsCache(t *testing.T) {
	be := mocks.NewOrderingBackend(t)
	cache := mocks.NewHoursCache(t)

	be.On("RestaurantHours", mock.Anything).Return(hoursResponse("2026-10-19 14:03:00"), nil).Once()
	cache.On("GetHours", mock.Anything).Return(nil, domain.ErrNotFound).Once()
	cache.On("SetHours", mock.Anything, mock.MatchedBy(func(s *domain.HoursSnapshot) bool {
		return s.ServerTime.Hour() == 14 && s.ServerTime.Minute() == 3
	}), time.Minute).Return(nil).Once()

	svc, _ := newHoursService(t, be, cache, time.Now())
	snapshot, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Len(t, snapshot.Hours, 7)
}

func TestHoursService_CacheErrorsAreNotFatal(t *testing.T) {
	be := mocks.NewOrderingBackend(t)
	cache := mocks.NewHoursCache(t)

	be.On("RestaurantHours", mock.Anything).Return(hoursResponse("2026-10-19 14:03:00"), nil).Once()
	cache.On("GetHours", mock.Anything).Return(nil, errors.New("connection reset")).Once()
	cache.On("SetHours", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	svc, _ := newHoursService(t, be, cache, time.Now())
	_, err := svc.Snapshot(context.Background())

	assert.NoError(t, err)
}

func TestHoursService_RefreshDisablesOrdering(t *testing.T) {
	be := mocks.NewOrderingBackend(t)
	resp := hoursResponse("2026-10-19 14:03:00")
	resp.Ordering.Enabled = false
	be.On("RestaurantHours", mock.Anything).Return(resp, nil).Once()

	svc, settings := newHoursService(t, be, nil, time.Now())
	settings.SetOrderingEnabled(true)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.Get().OrderingEnabled)
}

func TestHoursService_RunStopsWithContext(t *testing.T) {
	be := mocks.NewOrderingBackend(t)
	fetched := make(chan struct{}, 1)
	be.On("RestaurantHours", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case fetched <- struct{}{}:
			default:
			}
		}).
		Return(hoursResponse("2026-10-19 14:03:00"), nil)

	svc, _ := newHoursService(t, be, nil, time.Now())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.Run(ctx, time.Hour)
		close(done)
	}()

	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("Run did not refresh on start")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
