package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoomByID handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, h.log, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}
