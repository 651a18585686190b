package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking      BookingService
	Availability AvailabilityService
	Payment      PaymentService
	Room         RoomService
}

func NewService(repo *repository.Repository, gateway PaymentGateway, config *utils.Config, logger *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, logger)

	return &Service{
		Booking:      NewBookingService(repo, logger),
		Availability: availability,
		Payment:      NewPaymentService(repo, gateway, logger),
		Room:         NewRoomService(repo, logger),
	}
}
