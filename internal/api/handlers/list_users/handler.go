package list_users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	usersService "github.com/dungeon-app/booking-service/internal/service/users"
	"github.com/dungeon-app/booking-service/internal/service/users/models"
)

const msgInvalidStatus = "status de usuário inválido"

type UserService interface {
	List(ctx context.Context, status *string) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UserResponse HTTP response model
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// UserListResponse HTTP response model
type UserListResponse struct {
	Users []UserResponse `json:"users"`
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

// Handle GET /api/v1/users?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("GET /users - Invalid status filter")
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users - Failed to list users: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := UserListResponse{Users: make([]UserResponse, 0, len(result.Users))}
	for _, u := range result.Users {
		resp.Users = append(resp.Users, UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			Category:  u.Category,
			Status:    u.Status,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
