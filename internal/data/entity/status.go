package entity

import "time"

// State is the derived lifecycle state of a booking. It is a pure function of
// stored flags plus the current time and is never persisted.
type State string

const (
	StatePending   State = "pending"
	StatePaid      State = "paid"
	StateCancelled State = "cancelled"
	StateExpired   State = "expired"
)

// State derives the lifecycle state. Cancellation wins over expiry, expiry
// wins over payment.
func (b *Booking) State(now time.Time) State {
	switch {
	case b.IsCancelled:
		return StateCancelled
	case b.Expired(now):
		return StateExpired
	case b.IsPaid:
		return StatePaid
	default:
		return StatePending
	}
}

// Human-facing status labels shown on booking lists.
const (
	LabelCancelled          = "Cancelled"
	LabelExpired            = "Expired"
	LabelAdminPaid          = "Admin · Booked · Paid"
	LabelAdminReserved      = "Admin · Reserved"
	LabelOnlinePaidPaystack = "Online · Paid · Paystack"
	LabelOnlinePaidSettled  = "Online · Paid · Settled"
	LabelOnlineReserved     = "Online · Reserved · Unpaid"
	LabelUnknown            = "Unknown"
)

// StatusLabel projects the human-facing status from the derived state crossed
// with provenance and payment method.
func (b *Booking) StatusLabel(now time.Time) string {
	switch b.State(now) {
	case StateCancelled:
		return LabelCancelled
	case StateExpired:
		return LabelExpired
	}

	switch b.Source {
	case SourceAdmin, SourceDashboard:
		if b.IsPaid {
			return LabelAdminPaid
		}
		return LabelAdminReserved
	case SourceOnline, SourceUser:
		if !b.IsPaid {
			return LabelOnlineReserved
		}
		if b.PaymentMethod == PaymentMethodPaystack {
			return LabelOnlinePaidPaystack
		}
		return LabelOnlinePaidSettled
	default:
		return LabelUnknown
	}
}
