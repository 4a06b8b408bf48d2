package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidHours  = errors.New("invalid business hours")
	ErrInvalidPolicy = errors.New("invalid ordering policy")
)

// DayHours is one weekday of the restaurant schedule. Open and Close are HH:MM
// wall-clock times in the restaurant's timezone.
type DayHours struct {
	Day    string `json:"day"`
	Closed bool   `json:"closed"`
	Open   string `json:"open"`
	Close  string `json:"close"`
}

// WeekHours holds seven entries indexed by time.Weekday (0 = Sunday).
type WeekHours []DayHours

func (w WeekHours) Validate() error {
	if len(w) != 7 {
		return fmt.Errorf("%w: expected 7 days, got %d", ErrInvalidHours, len(w))
	}
	for i, day := range w {
		if day.Closed {
			continue
		}
		open, err := ClockMinutes(day.Open)
		if err != nil {
			return fmt.Errorf("%w: day %d open: %v", ErrInvalidHours, i, err)
		}
		closeAt, err := ClockMinutes(day.Close)
		if err != nil {
			return fmt.Errorf("%w: day %d close: %v", ErrInvalidHours, i, err)
		}
		if open >= closeAt {
			return fmt.Errorf("%w: day %d opens at %s but closes at %s", ErrInvalidHours, i, day.Open, day.Close)
		}
	}
	return nil
}

// On returns the entry for the weekday of t.
func (w WeekHours) On(day time.Weekday) DayHours {
	return w[int(day)%7]
}

type OrderingPolicy struct {
	Enabled                bool `json:"enabled" yaml:"enabled"`
	PrepTimeMinutes        int  `json:"prep_time_minutes" yaml:"prep_time_minutes"`
	SlotIntervalMinutes    int  `json:"slot_interval_minutes" yaml:"slot_interval_minutes"`
	LastOrderBufferMinutes int  `json:"last_order_buffer_minutes" yaml:"last_order_buffer_minutes"`
}

func (p OrderingPolicy) Validate() error {
	switch {
	case p.PrepTimeMinutes < 0:
		return fmt.Errorf("%w: prep time %d", ErrInvalidPolicy, p.PrepTimeMinutes)
	case p.SlotIntervalMinutes <= 0:
		return fmt.Errorf("%w: slot interval %d", ErrInvalidPolicy, p.SlotIntervalMinutes)
	case p.LastOrderBufferMinutes < 0:
		return fmt.Errorf("%w: last order buffer %d", ErrInvalidPolicy, p.LastOrderBufferMinutes)
	}
	return nil
}

// HoursSnapshot is what the backend reported about the restaurant at FetchedAt.
// ServerTime is the backend's clock at that moment; the current restaurant time
// is ServerTime advanced by the time elapsed since FetchedAt.
type HoursSnapshot struct {
	Hours      WeekHours      `json:"hours"`
	Ordering   OrderingPolicy `json:"ordering"`
	ServerTime time.Time      `json:"server_time"`
	FetchedAt  time.Time      `json:"fetched_at"`
}

func (s HoursSnapshot) Now(localNow time.Time, loc *time.Location) time.Time {
	elapsed := localNow.Sub(s.FetchedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return s.ServerTime.Add(elapsed).In(loc)
}

// ClockMinutes parses "HH:MM" into minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("malformed clock %q", clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("malformed hour in %q", clock)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("malformed minute in %q", clock)
	}
	return hour, minute, nil
}
