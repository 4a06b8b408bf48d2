package domain

const ASAPValue = "asap"

type PickupSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SlotKind string

const (
	SlotKindClosed        SlotKind = "closed"
	SlotKindKitchenClosed SlotKind = "kitchen_closed"
	SlotKindAvailable     SlotKind = "available"
	SlotKindFallback      SlotKind = "fallback"
)

const (
	ClosedReasonToday = "closed_today"
	ClosedReasonSoon  = "soon"
)

// SlotResult is the outcome of a pickup window computation. Which fields are
// set depends on Kind.
type SlotResult struct {
	Kind SlotKind `json:"kind"`

	// closed
	Reason      string `json:"reason,omitempty"`
	NextOpenDay string `json:"next_open_day,omitempty"`
	NextOpenAt  string `json:"next_open_at,omitempty"`

	// kitchen_closed, and available before opening
	OpensAt string `json:"opens_at,omitempty"`
	OpensOn string `json:"opens_on,omitempty"`

	// available
	OpenNow         bool         `json:"open_now"`
	PrepTimeMinutes int          `json:"prep_time_minutes,omitempty"`
	Slots           []PickupSlot `json:"slots,omitempty"`
}

func (r SlotResult) AcceptsOrders() bool {
	return r.Kind == SlotKindAvailable || r.Kind == SlotKindFallback
}

func (r SlotResult) Offers(value string) bool {
	for _, slot := range r.Slots {
		if slot.Value == value {
			return true
		}
	}
	return false
}
