package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/bookings - List all bookings with projected state
	r.Get("/api/bookings", bookingHandler.GetBookings)

	// GET /api/bookings/check - Available rooms for a category and range
	r.Get("/api/bookings/check", bookingHandler.CheckAvailability)

	// POST /api/bookings - Create an online reservation
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// PATCH /api/bookings/{id}/cancel - Cancel a future stay
	r.Patch("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, log))

		// POST /api/bookings/manual - Dashboard booking, may be pre-paid
		r.Post("/api/bookings/manual", bookingHandler.CreateManualBooking)

		// DELETE /api/bookings - Wipe the booking ledger
		r.Delete("/api/bookings", bookingHandler.ClearBookings)
	})
}
