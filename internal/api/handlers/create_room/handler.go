package create_room

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	roomsService "github.com/dungeon-app/booking-service/internal/service/rooms"
	"github.com/dungeon-app/booking-service/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados da sala inválidos"
)

type RoomService interface {
	Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateRoomRequest{
		ActorID:  actorID,
		Name:     req.Name,
		Capacity: req.Capacity,
		Status:   req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%d by user_id=%d", result.ID, actorID)
	handlers.RespondJSON(w, http.StatusCreated, RoomResponse{
		ID:        result.ID,
		Name:      result.Name,
		Capacity:  result.Capacity,
		Status:    result.Status,
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
		UpdatedAt: result.UpdatedAt.Format(time.RFC3339),
	})
}
