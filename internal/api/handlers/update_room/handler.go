package update_room

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	roomsService "github.com/dungeon-app/booking-service/internal/service/rooms"
	"github.com/dungeon-app/booking-service/internal/service/rooms/models"
)

const (
	msgInvalidRoomID      = "ID de sala inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados da sala inválidos"
	msgRoomNotFound       = "sala não encontrada"
)

type RoomService interface {
	Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UpdateRoomRequest HTTP request model
type UpdateRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// RoomResponse HTTP response model
type RoomResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
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

// Handle PUT /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	var req UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateRoomRequest{
		ActorID:  actorID,
		RoomID:   roomID,
		Name:     req.Name,
		Capacity: req.Capacity,
		Status:   req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /rooms/{id} - Failed to update room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id} - Room updated: room_id=%d by user_id=%d", roomID, actorID)
	handlers.RespondJSON(w, http.StatusOK, RoomResponse{
		ID:        result.ID,
		Name:      result.Name,
		Capacity:  result.Capacity,
		Status:    result.Status,
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
		UpdatedAt: result.UpdatedAt.Format(time.RFC3339),
	})
}
