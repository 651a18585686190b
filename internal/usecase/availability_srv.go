package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/failure"

	"go.uber.org/zap"
)

type AvailabilityService interface {
	// IsAvailable reports whether the room can host a stay over [start, end].
	IsAvailable(ctx context.Context, roomName string, start, end time.Time) (bool, error)

	// AvailableRooms filters a category down to rooms with no blocking
	// booking over the range.
	AvailableRooms(ctx context.Context, category string, start, end time.Time) ([]response.RoomResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

// checkRange pins both endpoints to turnover instants and rejects inverted
// or empty ranges.
func checkRange(start, end time.Time) (time.Time, time.Time, error) {
	checkIn := entity.CheckoutInstant(start)
	checkOut := entity.CheckoutInstant(end)
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, failure.Validation("end date must be after start date")
	}
	return checkIn, checkOut, nil
}

func (s *availabilityService) IsAvailable(ctx context.Context, roomName string, start, end time.Time) (bool, error) {
	checkIn, checkOut, err := checkRange(start, end)
	if err != nil {
		return false, err
	}

	now := entity.TruncateToMinute(time.Now())
	blocking, err := s.repo.Booking.CountBlocking(ctx, roomName, checkIn, checkOut, now)
	if err != nil {
		return false, err
	}

	return blocking == 0, nil
}

func (s *availabilityService) AvailableRooms(ctx context.Context, category string, start, end time.Time) ([]response.RoomResponse, error) {
	checkIn, checkOut, err := checkRange(start, end)
	if err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, failure.NotFound("rooms in category " + category)
	}

	now := entity.TruncateToMinute(time.Now())
	blocked, err := s.repo.Booking.BlockedRoomNumbers(ctx, category, checkIn, checkOut, now)
	if err != nil {
		return nil, err
	}

	taken := make(map[int]struct{}, len(blocked))
	for _, n := range blocked {
		taken[n] = struct{}{}
	}

	available := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if _, ok := taken[room.RoomNumber]; ok {
			continue
		}
		available = append(available, response.RoomToResponse(room))
	}

	s.log.Info("Availability checked",
		zap.String("category", category),
		zap.Time("check_in", checkIn),
		zap.Time("check_out", checkOut),
		zap.Int("available", len(available)),
		zap.Int("blocked", len(blocked)),
	)

	return available, nil
}
