package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/failure"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeadTime is the minimum notice an unprivileged booking must give before
// the stay starts.
const LeadTime = 24 * time.Hour

type BookingService interface {
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CreateManualBooking(ctx context.Context, req *request.CreateManualBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ClearBookings(ctx context.Context) (int64, error)

	// SettleDueReservations promotes unpaid reservations whose stay has
	// started. Invoked by the settlement worker, never by read paths.
	SettleDueReservations(ctx context.Context) (int64, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := entity.TruncateToMinute(time.Now())
	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = response.BookingToResponse(b, now)
	}

	return out, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, failure.Validation(utils.FormatValidationErrors(errs))
	}

	return s.create(ctx, &req2booking{
		CreateBookingRequest: *req,
		source:               entity.SourceOnline,
		enforceLeadTime:      true,
	})
}

func (s *bookingService) CreateManualBooking(ctx context.Context, req *request.CreateManualBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, failure.Validation(utils.FormatValidationErrors(errs))
	}

	source := entity.SourceDashboard
	if req.Source != "" {
		source = entity.Source(req.Source)
	}

	return s.create(ctx, &req2booking{
		CreateBookingRequest: req.CreateBookingRequest,
		source:               source,
		isPaid:               req.IsPaid,
		// A pre-paid manual booking may start inside the lead-time window.
		enforceLeadTime: !req.IsPaid,
	})
}

type req2booking struct {
	request.CreateBookingRequest
	source          entity.Source
	isPaid          bool
	enforceLeadTime bool
}

func (s *bookingService) create(ctx context.Context, in *req2booking) (*response.BookingResponse, error) {
	if _, _, err := checkRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	now := entity.TruncateToMinute(time.Now())
	start := entity.TruncateToMinute(in.StartDate)

	if in.enforceLeadTime && start.Before(now.Add(LeadTime)) {
		return nil, failure.Validation("reservations must be made at least 24 hours in advance")
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:      in.FullName,
		Phone:         in.Phone,
		Email:         in.Email,
		RoomName:      in.RoomName,
		RoomNumber:    in.RoomNumber,
		RoomPrice:     in.RoomPrice,
		StartDate:     start,
		EndDate:       entity.CheckoutInstant(in.EndDate),
		IsPaid:        in.isPaid,
		Source:        in.source,
		PaymentMethod: entity.PaymentMethodNone,
		PaymentStatus: entity.PaymentStatusPending,
	}
	if in.isPaid {
		booking.PaymentMethod = entity.PaymentMethodManual
		booking.PaymentStatus = entity.PaymentStatusSettled
	}

	if err := s.repo.Booking.CreateExclusive(ctx, booking, now); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("room_name", booking.RoomName),
		zap.String("source", string(booking.Source)),
		zap.Bool("is_paid", booking.IsPaid),
		zap.Time("start_date", booking.StartDate),
		zap.Time("end_date", booking.EndDate),
	)

	resp := response.BookingToResponse(booking, now)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, failure.Validation("invalid booking ID format")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, failure.NotFound("booking")
	}

	now := entity.TruncateToMinute(time.Now())

	// Cancelling an already-cancelled booking is a no-op success.
	if booking.IsCancelled {
		resp := response.BookingToResponse(booking, now)
		return &resp, nil
	}

	if !now.Before(booking.StartDate) {
		return nil, failure.InvalidState("cannot cancel a booking after its start date")
	}

	if err := s.repo.Booking.SetCancelled(ctx, id); err != nil {
		return nil, err
	}

	booking.IsCancelled = true
	booking.UpdatedAt = now

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("room_name", booking.RoomName),
	)

	resp := response.BookingToResponse(booking, now)
	return &resp, nil
}

func (s *bookingService) ClearBookings(ctx context.Context) (int64, error) {
	deleted, err := s.repo.Booking.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.log.Warn("All bookings cleared", zap.Int64("deleted", deleted))
	return deleted, nil
}

func (s *bookingService) SettleDueReservations(ctx context.Context) (int64, error) {
	now := entity.TruncateToMinute(time.Now())

	settled, err := s.repo.Booking.SettleDue(ctx, now)
	if err != nil {
		return 0, err
	}

	if settled > 0 {
		s.log.Info("Due reservations settled", zap.Int64("settled", settled))
	}
	return settled, nil
}
