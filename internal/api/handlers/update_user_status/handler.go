package update_user_status

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	usersService "github.com/dungeon-app/booking-service/internal/service/users"
	"github.com/dungeon-app/booking-service/internal/service/users/models"
)

const (
	msgInvalidUserID      = "ID de usuário inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgUserNotFound       = "usuário não encontrado"
	msgInvalidStatus      = "status de usuário inválido"
)

type UserService interface {
	UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "Pendente" | "Ativo" | "Bloqueado"
}

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/users/{userId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /users/{id}/status - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), &models.UpdateStatusRequest{
		ActorID: actorID,
		UserID:  userID,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PATCH /users/{id}/status - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PATCH /users/{id}/status - Invalid status %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /users/{id}/status - Failed to update: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{id}/status - Status updated: user_id=%d to %s by user_id=%d", userID, req.Status, actorID)
	handlers.RespondNoContent(w)
}
