package tests

import (
	"testing"
	"time"

	"tandoor-ordering/checkout-svc/internal/domain"
	"tandoor-ordering/checkout-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func restaurantLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

// weekHours opens every day from open to close except the listed weekdays.
func weekHours(open, close string, closed ...time.Weekday) domain.WeekHours {
	hours := make(domain.WeekHours, 7)
	for i := range hours {
		hours[i] = domain.DayHours{Day: dayNames[i], Open: open, Close: close}
	}
	for _, day := range closed {
		hours[day] = domain.DayHours{Day: dayNames[day], Closed: true}
	}
	return hours
}

func standardPolicy() domain.OrderingPolicy {
	return domain.OrderingPolicy{
		Enabled:                true,
		PrepTimeMinutes:        25,
		SlotIntervalMinutes:    30,
		LastOrderBufferMinutes: 30,
	}
}

// monday returns 2026-10-19 (a Monday) at the given wall-clock time.
func monday(t *testing.T, hour, minute, second int) time.Time {
	return time.Date(2026, time.October, 19, hour, minute, second, 0, restaurantLocation(t))
}

func slotValues(result domain.SlotResult) []string {
	values := make([]string, 0, len(result.Slots))
	for _, slot := range result.Slots {
		values = append(values, slot.Value)
	}
	return values
}

func TestComputeSlots_AfternoonOrder(t *testing.T) {
	result := service.ComputeSlots(weekHours("11:00", "22:00"), standardPolicy(), monday(t, 14, 3, 0))

	require.Equal(t, domain.SlotKindAvailable, result.Kind)
	assert.True(t, result.OpenNow)
	assert.Empty(t, result.OpensAt)
	assert.Equal(t, []string{
		"asap", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00",
		"18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
	}, slotValues(result))
	assert.Equal(t, "ASAP (approx. 25-35 mins)", result.Slots[0].Label)
	assert.Equal(t, "2:30 PM", result.Slots[1].Label)
	assert.Equal(t, "9:30 PM", result.Slots[len(result.Slots)-1].Label)
}

func TestComputeSlots_AfterLastOrderTime(t *testing.T) {
	result := service.ComputeSlots(weekHours("11:00", "22:00"), standardPolicy(), monday(t, 22, 5, 0))

	assert.Equal(t, domain.SlotKindKitchenClosed, result.Kind)
	assert.Empty(t, result.Slots)
	assert.Equal(t, "Tuesday", result.OpensOn)
	assert.Equal(t, "11:00 AM", result.OpensAt)
	assert.False(t, result.AcceptsOrders())
}

func TestComputeSlots_AtLastOrderTimeIsClosed(t *testing.T) {
	result := service.ComputeSlots(weekHours("11:00", "22:00"), standardPolicy(), monday(t, 21, 30, 0))

	assert.Equal(t, domain.SlotKindKitchenClosed, result.Kind)
}

func TestComputeSlots_KitchenClosedNamesNextOpenDay(t *testing.T) {
	hours := weekHours("11:00", "22:00", time.Tuesday)
	hours[time.Wednesday].Open = "12:00"

	result := service.ComputeSlots(hours, standardPolicy(), monday(t, 21, 45, 0))

	assert.Equal(t, domain.SlotKindKitchenClosed, result.Kind)
	assert.Equal(t, "Wednesday", result.OpensOn)
	assert.Equal(t, "12:00 PM", result.OpensAt)
}

func TestComputeSlots_BeforeOpening(t *testing.T) {
	result := service.ComputeSlots(weekHours("11:00", "22:00"), standardPolicy(), monday(t, 9, 10, 0))

	require.Equal(t, domain.SlotKindAvailable, result.Kind)
	assert.False(t, result.OpenNow)
	assert.Equal(t, "11:00 AM", result.OpensAt)
	assert.Equal(t, 25, result.PrepTimeMinutes)
	values := slotValues(result)
	assert.Equal(t, "asap", values[0])
	assert.Equal(t, "11:30", values[1])
	assert.Equal(t, "21:30", values[len(values)-1])
}

func TestComputeSlots_ClosedToday(t *testing.T) {
	result := service.ComputeSlots(weekHours("11:00", "22:00", time.Monday), standardPolicy(), monday(t, 12, 0, 0))

	assert.Equal(t, domain.SlotKindClosed, result.Kind)
	assert.Equal(t, domain.ClosedReasonToday, result.Reason)
	assert.Equal(t, "Tuesday", result.NextOpenDay)
	assert.Equal(t, "11:00 AM", result.NextOpenAt)
	assert.Empty(t, result.Slots)
}

func TestComputeSlots_ClosedTodayWrapsAroundWeek(t *testing.T) {
	hours := weekHours("11:00", "22:00",
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)

	result := service.ComputeSlots(hours, standardPolicy(), monday(t, 12, 0, 0))

	assert.Equal(t, domain.ClosedReasonToday, result.Reason)
	assert.Equal(t, "Sunday", result.NextOpenDay)
}

func TestComputeSlots_ClosedAllWeek(t *testing.T) {
	hours := weekHours("11:00", "22:00",
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)

	result := service.ComputeSlots(hours, standardPolicy(), monday(t, 12, 0, 0))

	assert.Equal(t, domain.SlotKindClosed, result.Kind)
	assert.Equal(t, domain.ClosedReasonSoon, result.Reason)
	assert.Empty(t, result.NextOpenDay)
}

func TestComputeSlots_PartialMinuteRoundsUp(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		firstSlot string
	}{
		{name: "aligned", now: monday(t, 14, 5, 0), firstSlot: "14:30"},
		{name: "seconds_past_alignment", now: monday(t, 14, 5, 30), firstSlot: "15:00"},
		{name: "crosses_hour", now: monday(t, 14, 40, 0), firstSlot: "15:30"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := service.ComputeSlots(weekHours("11:00", "22:00"), standardPolicy(), testCase.now)
			require.Equal(t, domain.SlotKindAvailable, result.Kind)
			assert.Equal(t, testCase.firstSlot, result.Slots[1].Value)

			earliest := testCase.now.Add(25 * time.Minute)
			for _, slot := range result.Slots[1:] {
				hour, minute, err := domain.ParseClock(slot.Value)
				require.NoError(t, err)
				at := time.Date(2026, time.October, 19, hour, minute, 0, 0, testCase.now.Location())
				assert.False(t, at.Before(earliest), "slot %s before earliest pickup", slot.Value)
			}
		})
	}
}

func TestComputeSlots_NoSlotsLeftBeforeLastOrder(t *testing.T) {
	// 21:10 + 25 minutes is past 21:30, so only ASAP remains.
	result := service.ComputeSlots(weekHours("11:00", "22:00"), standardPolicy(), monday(t, 21, 10, 0))

	require.Equal(t, domain.SlotKindAvailable, result.Kind)
	assert.Equal(t, []string{"asap"}, slotValues(result))
}

func TestComputeSlots_InvalidDataFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		hours  domain.WeekHours
		policy domain.OrderingPolicy
	}{
		{name: "six_days", hours: weekHours("11:00", "22:00")[:6], policy: standardPolicy()},
		{name: "open_after_close", hours: weekHours("22:00", "11:00"), policy: standardPolicy()},
		{name: "malformed_clock", hours: weekHours("11", "22:00"), policy: standardPolicy()},
		{name: "zero_interval", hours: weekHours("11:00", "22:00"), policy: domain.OrderingPolicy{PrepTimeMinutes: 25}},
		{name: "negative_buffer", hours: weekHours("11:00", "22:00"), policy: domain.OrderingPolicy{PrepTimeMinutes: 25, SlotIntervalMinutes: 30, LastOrderBufferMinutes: -5}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := service.ComputeSlots(testCase.hours, testCase.policy, monday(t, 14, 3, 0))
			assert.Equal(t, service.DefaultSlots(), result)
		})
	}
}

func TestDefaultSlots(t *testing.T) {
	result := service.DefaultSlots()

	assert.Equal(t, domain.SlotKindFallback, result.Kind)
	assert.True(t, result.AcceptsOrders())
	assert.Equal(t, []string{"asap", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30"}, slotValues(result))
	assert.Equal(t, "ASAP (approx. 25-35 mins)", result.Slots[0].Label)
	assert.Equal(t, "6:00 PM", result.Slots[1].Label)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		hour, minute int
		expected     string
	}{
		{0, 5, "12:05 AM"},
		{9, 0, "9:00 AM"},
		{12, 0, "12:00 PM"},
		{14, 30, "2:30 PM"},
		{23, 59, "11:59 PM"},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.expected, service.FormatClock(testCase.hour, testCase.minute))
	}
}
