package update_user_role

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
	msgInvalidRole        = "papel de usuário inválido"
)

type UserService interface {
	UpdateRole(ctx context.Context, req *models.UpdateRoleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UpdateRoleRequest HTTP request model
type UpdateRoleRequest struct {
	Role string `json:"role"` // "Membro" | "Editor" | "Administrador"
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

// Handle PATCH /api/v1/users/{userId}/role
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /users/{id}/role - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	var req UpdateRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id}/role - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateRole(r.Context(), &models.UpdateRoleRequest{
		ActorID: actorID,
		UserID:  userID,
		Role:    req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PATCH /users/{id}/role - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PATCH /users/{id}/role - Invalid role %q", req.Role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("PATCH /users/{id}/role - Failed to update: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{id}/role - Role updated: user_id=%d to %s by user_id=%d", userID, req.Role, actorID)
	handlers.RespondNoContent(w)
}
