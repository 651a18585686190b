package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	RoomNumber int       `json:"room_number"`
	Images     []string  `json:"images"`
	Amenities  []string  `json:"amenities"`
	CreatedAt  time.Time `json:"created_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		Name:       room.Name,
		Category:   room.Category,
		Price:      room.Price,
		RoomNumber: room.RoomNumber,
		Images:     room.Images,
		Amenities:  room.Amenities,
		CreatedAt:  room.CreatedAt,
	}
}
