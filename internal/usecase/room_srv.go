package usecase

import (
	"context"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/failure"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = response.RoomToResponse(r)
	}
	return out, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, failure.Validation("invalid room ID format")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, failure.NotFound("room")
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}
