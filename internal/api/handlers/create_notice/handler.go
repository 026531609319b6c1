package create_notice

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	noticesService "github.com/dungeon-app/booking-service/internal/service/notices"
	"github.com/dungeon-app/booking-service/internal/service/notices/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "usuário não autenticado"
	msgInvalidInput       = "dados do comunicado inválidos"
)

type NoticeService interface {
	Create(ctx context.Context, req *models.CreateNoticeRequest) (*models.NoticeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateNoticeRequest HTTP request model
type CreateNoticeRequest struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	OpenForVoting bool   `json:"openForVoting"`
}

// NoticeResponse HTTP response model
type NoticeResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	AuthorID      int64  `json:"authorId"`
	OpenForVoting bool   `json:"openForVoting"`
	CreatedAt     string `json:"createdAt"`
}

type Handler struct {
	service NoticeService
	logger  Logger
}

func NewHandler(service NoticeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/notices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /notices - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateNoticeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateNoticeRequest{
		AuthorID:      authorID,
		Title:         req.Title,
		Body:          req.Body,
		OpenForVoting: req.OpenForVoting,
	})
	if err != nil {
		switch {
		case errors.Is(err, noticesService.ErrInvalidInput):
			h.logger.Warn("POST /notices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /notices - Failed to create notice: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notices - Notice created: notice_id=%d by user_id=%d", result.ID, authorID)
	handlers.RespondJSON(w, http.StatusCreated, NoticeResponse{
		ID:            result.ID,
		Title:         result.Title,
		Body:          result.Body,
		AuthorID:      result.AuthorID,
		OpenForVoting: result.OpenForVoting,
		CreatedAt:     result.CreatedAt.Format(time.RFC3339),
	})
}
