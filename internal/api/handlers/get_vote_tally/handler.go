package get_vote_tally

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	noticesService "github.com/dungeon-app/booking-service/internal/service/notices"
	"github.com/dungeon-app/booking-service/internal/service/notices/models"
)

const (
	msgInvalidNoticeID = "ID de comunicado inválido"
	msgNoticeNotFound  = "comunicado não encontrado"
)

type NoticeService interface {
	GetTally(ctx context.Context, noticeID int64) (*models.TallyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TallyResponse HTTP response model
type TallyResponse struct {
	NoticeID int64 `json:"noticeId"`
	For      int   `json:"for"`
	Against  int   `json:"against"`
	Abstain  int   `json:"abstain"`
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

// Handle GET /api/v1/notices/{noticeId}/votes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	noticeID, err := strconv.ParseInt(mux.Vars(r)["noticeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /notices/{id}/votes - Invalid notice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNoticeID)
		return
	}

	result, err := h.service.GetTally(r.Context(), noticeID)
	if err != nil {
		switch {
		case errors.Is(err, noticesService.ErrNoticeNotFound):
			h.logger.Warn("GET /notices/{id}/votes - Notice not found: notice_id=%d", noticeID)
			handlers.RespondNotFound(w, msgNoticeNotFound)

		default:
			h.logger.Error("GET /notices/{id}/votes - Failed to get tally: notice_id=%d, error=%v", noticeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TallyResponse{
		NoticeID: result.NoticeID,
		For:      result.For,
		Against:  result.Against,
		Abstain:  result.Abstain,
	})
}
