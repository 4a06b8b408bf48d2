package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"tandoor-ordering/checkout-svc/internal/domain"
)

const naiveTimeLayout = "2006-01-02 15:04:05"

// HoursService loads restaurant hours from the backend and turns them into
// pickup slots. The backend's current_time is the only clock used for slots.
type HoursService struct {
	backend  OrderingBackend
	cache    HoursCache
	settings *SettingsStore
	logger   *zap.Logger
	ttl      time.Duration
	clock    func() time.Time
	group    singleflight.Group
}

func NewHoursService(backend OrderingBackend, cache HoursCache, settings *SettingsStore, logger *zap.Logger, ttl time.Duration) *HoursService {
	return &HoursService{
		backend:  backend,
		cache:    cache,
		settings: settings,
		logger:   logger,
		ttl:      ttl,
		clock:    time.Now,
	}
}

// WithClock replaces the local clock used to age cached snapshots.
func (s *HoursService) WithClock(clock func() time.Time) *HoursService {
	s.clock = clock
	return s
}

// PickupSlots never fails: when hours are unavailable the static fallback
// list is returned.
func (s *HoursService) PickupSlots(ctx context.Context) domain.SlotResult {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		s.logger.Warn("could not load restaurant hours, using default pickup slots", zap.Error(err))
		return DefaultSlots()
	}
	loc := s.settings.Get().Location
	return ComputeSlots(snapshot.Hours, snapshot.Ordering, snapshot.Now(s.clock(), loc))
}

// Snapshot returns cached hours when fresh, otherwise fetches them. Concurrent
// misses share one backend call.
func (s *HoursService) Snapshot(ctx context.Context) (*domain.HoursSnapshot, error) {
	if s.cache != nil {
		cached, err := s.cache.GetHours(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("hours cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.group.Do("hours", func() (interface{}, error) {
		return s.Refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.HoursSnapshot), nil
}

// Refresh fetches hours from the backend, applies the ordering flag to the
// settings and caches the snapshot.
func (s *HoursService) Refresh(ctx context.Context) (*domain.HoursSnapshot, error) {
	resp, err := s.backend.RestaurantHours(ctx)
	if err != nil {
		return nil, &NetworkError{Op: "load restaurant hours", Err: err}
	}

	hours := resp.Hours
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	if err := resp.Ordering.Validate(); err != nil {
		return nil, err
	}

	loc := s.settings.Get().Location
	serverTime, err := parseServerTime(resp.CurrentTime, loc)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.HoursSnapshot{
		Hours:      hours,
		Ordering:   resp.Ordering,
		ServerTime: serverTime,
		FetchedAt:  s.clock(),
	}

	s.settings.SetOrderingEnabled(resp.Ordering.Enabled)

	if s.cache != nil {
		if err := s.cache.SetHours(ctx, snapshot, s.ttl); err != nil {
			s.logger.Warn("hours cache write failed", zap.Error(err))
		}
	}
	return snapshot, nil
}

// Run refreshes hours every interval until ctx is done, so the ordering flag
// stays current even when no customer is looking at pickup slots.
func (s *HoursService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("scheduled hours refresh failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func parseServerTime(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: backend reported no current_time", domain.ErrInvalidHours)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(naiveTimeLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: unparseable current_time %q", domain.ErrInvalidHours, value)
}
