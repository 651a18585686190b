package entity

import (
	"time"

	"github.com/google/uuid"
)

type Source string

const (
	SourceAdmin     Source = "admin"
	SourceOnline    Source = "online"
	SourceDashboard Source = "dashboard"
	SourceUser      Source = "user"
)

type PaymentMethod string

const (
	PaymentMethodPaystack PaymentMethod = "paystack"
	PaymentMethodManual   PaymentMethod = "manual"
	PaymentMethodSettled  PaymentMethod = "settled"
	PaymentMethodNone     PaymentMethod = "none"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusSettled PaymentStatus = "settled"
)

// Booking is the core reservation record. EndDate is always stored pinned to
// the checkout instant; StartDate keeps the instant the guest supplied.
// Guest fields are denormalized, RoomID is an optional structural reference.
type Booking struct {
	Base
	FullName      string        `db:"full_name"`
	Phone         string        `db:"phone"`
	Email         string        `db:"email"`
	RoomName      string        `db:"room_name"`
	RoomNumber    int           `db:"room_number"`
	RoomPrice     float64       `db:"room_price"`
	RoomID        *uuid.UUID    `db:"room_id"`
	StartDate     time.Time     `db:"start_date"`
	EndDate       time.Time     `db:"end_date"`
	IsPaid        bool          `db:"is_paid"`
	IsCancelled   bool          `db:"is_cancelled"`
	Source        Source        `db:"source"`
	PaymentMethod PaymentMethod `db:"payment_method"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	Reference     *string       `db:"reference"`
}

// CheckIn is the instant the stay starts occupying the room for overlap
// purposes (noon on the start day).
func (b *Booking) CheckIn() time.Time {
	return CheckoutInstant(b.StartDate)
}

// Checkout is the instant the stay releases the room.
func (b *Booking) Checkout() time.Time {
	return CheckoutInstant(b.EndDate)
}

// Expired reports whether the stay's checkout has passed. Expiry is derived,
// never stored.
func (b *Booking) Expired(now time.Time) bool {
	return now.After(b.Checkout())
}

// Overlaps reports whether this booking conflicts with the requested range.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return Overlap(b.StartDate, b.EndDate, start, end)
}

// Blocks reports whether this booking makes the room unavailable for the
// requested range: cancelled and expired bookings never block.
func (b *Booking) Blocks(start, end, now time.Time) bool {
	if b.IsCancelled || b.Expired(now) {
		return false
	}
	return b.Overlaps(start, end)
}
