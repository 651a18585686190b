package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-booking/internal/data/entity"
)

func futureStay(src entity.Source, paid bool, method entity.PaymentMethod) entity.Booking {
	return entity.Booking{
		RoomName:      "Paris",
		StartDate:     date(2026, time.June, 10, 0, 0),
		EndDate:       entity.CheckoutInstant(date(2026, time.June, 12, 0, 0)),
		IsPaid:        paid,
		Source:        src,
		PaymentMethod: method,
	}
}

func TestBooking_State(t *testing.T) {
	now := date(2026, time.June, 1, 10, 0)

	b := futureStay(entity.SourceOnline, false, entity.PaymentMethodNone)
	assert.Equal(t, entity.StatePending, b.State(now))

	b.IsPaid = true
	assert.Equal(t, entity.StatePaid, b.State(now))

	// Expiry overrides payment.
	after := date(2026, time.June, 12, 13, 0)
	assert.Equal(t, entity.StateExpired, b.State(after))

	// Cancellation overrides everything.
	b.IsCancelled = true
	assert.Equal(t, entity.StateCancelled, b.State(now))
	assert.Equal(t, entity.StateCancelled, b.State(after))
}

func TestBooking_State_ExpiresAfterCheckoutOnly(t *testing.T) {
	b := futureStay(entity.SourceOnline, true, entity.PaymentMethodPaystack)

	atCheckout := date(2026, time.June, 12, 12, 0)
	assert.Equal(t, entity.StatePaid, b.State(atCheckout))

	pastCheckout := date(2026, time.June, 12, 12, 1)
	assert.Equal(t, entity.StateExpired, b.State(pastCheckout))
}

func TestBooking_StatusLabel(t *testing.T) {
	now := date(2026, time.June, 1, 10, 0)

	tests := []struct {
		name    string
		booking entity.Booking
		want    string
	}{
		{"dashboard paid", futureStay(entity.SourceDashboard, true, entity.PaymentMethodManual), entity.LabelAdminPaid},
		{"admin paid", futureStay(entity.SourceAdmin, true, entity.PaymentMethodManual), entity.LabelAdminPaid},
		{"dashboard reserved", futureStay(entity.SourceDashboard, false, entity.PaymentMethodNone), entity.LabelAdminReserved},
		{"online paid via provider", futureStay(entity.SourceOnline, true, entity.PaymentMethodPaystack), entity.LabelOnlinePaidPaystack},
		{"user paid settled", futureStay(entity.SourceUser, true, entity.PaymentMethodSettled), entity.LabelOnlinePaidSettled},
		{"online reserved unpaid", futureStay(entity.SourceOnline, false, entity.PaymentMethodNone), entity.LabelOnlineReserved},
		{"unknown source", futureStay(entity.Source("kiosk"), true, entity.PaymentMethodNone), entity.LabelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.StatusLabel(now))
		})
	}

	cancelled := futureStay(entity.SourceOnline, true, entity.PaymentMethodPaystack)
	cancelled.IsCancelled = true
	assert.Equal(t, entity.LabelCancelled, cancelled.StatusLabel(now))

	expired := futureStay(entity.SourceDashboard, true, entity.PaymentMethodManual)
	assert.Equal(t, entity.LabelExpired, expired.StatusLabel(date(2026, time.July, 1, 0, 0)))
}
