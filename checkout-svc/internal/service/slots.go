package service

import (
	"fmt"
	"time"

	"tandoor-ordering/checkout-svc/internal/domain"
)

// Static pickup times offered when the restaurant hours cannot be loaded.
var defaultSlotTimes = []string{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30"}

const (
	defaultPrepMinutes = 25
	asapWindowMinutes  = 10
)

// ComputeSlots derives the pickup times that can still be offered at now.
// now must already be expressed in the restaurant's timezone. Hours or policy
// data that fails validation degrades to DefaultSlots.
func ComputeSlots(hours domain.WeekHours, policy domain.OrderingPolicy, now time.Time) domain.SlotResult {
	if hours.Validate() != nil || policy.Validate() != nil {
		return DefaultSlots()
	}

	today := hours.On(now.Weekday())
	if today.Closed {
		next, ok := nextOpenDay(hours, now.Weekday())
		if !ok {
			return domain.SlotResult{Kind: domain.SlotKindClosed, Reason: domain.ClosedReasonSoon}
		}
		return domain.SlotResult{
			Kind:        domain.SlotKindClosed,
			Reason:      domain.ClosedReasonToday,
			NextOpenDay: next.Day,
			NextOpenAt:  clockLabel(next.Open),
		}
	}

	openTime := atClock(now, today.Open)
	closeTime := atClock(now, today.Close)
	lastOrderTime := closeTime.Add(-minutes(policy.LastOrderBufferMinutes))

	prep := minutes(policy.PrepTimeMinutes)
	earliestPickup := now.Add(prep)
	if earliestPickup.Before(openTime) {
		earliestPickup = openTime.Add(prep)
	}
	earliestPickup = ceilToInterval(earliestPickup, policy.SlotIntervalMinutes)

	if !now.Before(lastOrderTime) {
		result := domain.SlotResult{Kind: domain.SlotKindKitchenClosed}
		if next, ok := nextOpenDay(hours, now.Weekday()); ok {
			result.OpensOn = next.Day
			result.OpensAt = clockLabel(next.Open)
		} else {
			result.OpensOn = today.Day
			result.OpensAt = clockLabel(today.Open)
		}
		return result
	}

	slots := []domain.PickupSlot{asapSlot(policy.PrepTimeMinutes)}
	interval := minutes(policy.SlotIntervalMinutes)
	for slot := earliestPickup; !slot.After(lastOrderTime); slot = slot.Add(interval) {
		slots = append(slots, domain.PickupSlot{
			Value: slot.Format("15:04"),
			Label: FormatClock(slot.Hour(), slot.Minute()),
		})
	}

	result := domain.SlotResult{
		Kind:            domain.SlotKindAvailable,
		OpenNow:         !now.Before(openTime),
		PrepTimeMinutes: policy.PrepTimeMinutes,
		Slots:           slots,
	}
	if !result.OpenNow {
		result.OpensAt = FormatClock(openTime.Hour(), openTime.Minute())
	}
	return result
}

func DefaultSlots() domain.SlotResult {
	slots := []domain.PickupSlot{asapSlot(defaultPrepMinutes)}
	for _, value := range defaultSlotTimes {
		slots = append(slots, domain.PickupSlot{Value: value, Label: clockLabel(value)})
	}
	return domain.SlotResult{
		Kind:            domain.SlotKindFallback,
		PrepTimeMinutes: defaultPrepMinutes,
		Slots:           slots,
	}
}

// FormatClock renders a 24-hour time as "2:30 PM".
func FormatClock(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

func asapSlot(prepMinutes int) domain.PickupSlot {
	return domain.PickupSlot{
		Value: domain.ASAPValue,
		Label: fmt.Sprintf("ASAP (approx. %d-%d mins)", prepMinutes, prepMinutes+asapWindowMinutes),
	}
}

func nextOpenDay(hours domain.WeekHours, from time.Weekday) (domain.DayHours, bool) {
	for i := 1; i <= 7; i++ {
		day := hours[(int(from)+i)%7]
		if !day.Closed {
			return day, true
		}
	}
	return domain.DayHours{}, false
}

// ceilToInterval rounds t up to the next multiple of interval minutes past the
// hour. A partial minute counts as a full one so the result is never before t.
func ceilToInterval(t time.Time, interval int) time.Time {
	hourStart := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	minute := t.Minute()
	if t.Second() > 0 || t.Nanosecond() > 0 {
		minute++
	}
	rounded := (minute + interval - 1) / interval * interval
	return hourStart.Add(minutes(rounded))
}

func atClock(day time.Time, clock string) time.Time {
	hour, minute, _ := domain.ParseClock(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func clockLabel(clock string) string {
	hour, minute, err := domain.ParseClock(clock)
	if err != nil {
		return clock
	}
	return FormatClock(hour, minute)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
