package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/failure"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Room    *RoomHandler
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, service.Availability, log),
		Room:    NewRoomHandler(service.Room, log),
		Payment: NewPaymentHandler(service.Payment, log),
	}
}

// writeServiceError translates a service error into the response envelope.
// Unclassified errors are logged and answered as 500 without leaking detail.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code := failure.GetCode(err)
	if code == http.StatusInternalServerError {
		log.Error("Unexpected service error",
			zap.String("operation", operation),
			zap.Error(err),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}
	utils.ResponseError(w, code, err.Error())
}
