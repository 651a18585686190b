package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service      usecase.BookingService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, availability usecase.AvailabilityService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:      service,
		availability: availability,
		log:          log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /api/bookings
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// CreateManualBooking handles POST /api/bookings/manual (admin only)
func (h *BookingHandler) CreateManualBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateManualBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateManualBooking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create manual booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// CancelBooking handles PATCH /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// ClearBookings handles DELETE /api/bookings (admin only)
func (h *BookingHandler) ClearBookings(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.ClearBookings(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "clear bookings")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("%d bookings deleted", deleted), nil)
}

// CheckAvailability handles GET /api/bookings/check
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := query.Get("category")
	if category == "" {
		utils.ResponseBadRequest(w, "category is required", nil)
		return
	}

	start, err := parseDate(query.Get("start_date"))
	if err != nil {
		utils.ResponseBadRequest(w, "start_date must be an RFC 3339 timestamp or a YYYY-MM-DD date", nil)
		return
	}
	end, err := parseDate(query.Get("end_date"))
	if err != nil {
		utils.ResponseBadRequest(w, "end_date must be an RFC 3339 timestamp or a YYYY-MM-DD date", nil)
		return
	}

	rooms, err := h.availability.AvailableRooms(r.Context(), category, start, end)
	if err != nil {
		writeServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
