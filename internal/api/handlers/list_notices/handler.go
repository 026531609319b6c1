package list_notices

import (
	"context"
	"net/http"
	"time"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/service/notices/models"
)

type NoticeService interface {
	List(ctx context.Context) (*models.NoticeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
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

// NoticeListResponse HTTP response model
type NoticeListResponse struct {
	Notices []NoticeResponse `json:"notices"`
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

// Handle GET /api/v1/notices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /notices - Failed to list notices: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := NoticeListResponse{Notices: make([]NoticeResponse, 0, len(result.Notices))}
	for _, n := range result.Notices {
		resp.Notices = append(resp.Notices, NoticeResponse{
			ID:            n.ID,
			Title:         n.Title,
			Body:          n.Body,
			AuthorID:      n.AuthorID,
			OpenForVoting: n.OpenForVoting,
			CreatedAt:     n.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
