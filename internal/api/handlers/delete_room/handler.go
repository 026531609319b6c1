package delete_room

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	roomsService "github.com/dungeon-app/booking-service/internal/service/rooms"
)

const (
	msgInvalidRoomID   = "ID de sala inválido"
	msgRoomNotFound    = "sala não encontrada"
	msgRoomHasBookings = "a sala possui reservas futuras e não pode ser removida"
)

type RoomService interface {
	Delete(ctx context.Context, actorID, roomID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), actorID, roomID); err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, roomsService.ErrRoomHasBookings):
			h.logger.Warn("DELETE /rooms/{id} - Room has future bookings: room_id=%d", roomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomHasBookings)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed to delete room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted: room_id=%d by user_id=%d", roomID, actorID)
	handlers.RespondNoContent(w)
}
