package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	// GET /api/rooms - List the room inventory
	r.Get("/api/rooms", roomHandler.GetRooms)

	// GET /api/rooms/{id} - Single room detail
	r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)
}
