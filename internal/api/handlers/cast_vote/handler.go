package cast_vote

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	noticesService "github.com/dungeon-app/booking-service/internal/service/notices"
	"github.com/dungeon-app/booking-service/internal/service/notices/models"
)

const (
	msgInvalidNoticeID    = "ID de comunicado inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "usuário não autenticado"
	msgNoticeNotFound     = "comunicado não encontrado"
	msgVotingClosed       = "o comunicado não está aberto para votação"
	msgVoterNotActive     = "apenas membros ativos podem votar"
	msgInvalidChoice      = "voto inválido"
)

type NoticeService interface {
	CastVote(ctx context.Context, req *models.CastVoteRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CastVoteRequest HTTP request model
type CastVoteRequest struct {
	Choice string `json:"choice"` // "A Favor" | "Contra" | "Abstenção"
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

// Handle POST /api/v1/notices/{noticeId}/votes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	noticeID, err := strconv.ParseInt(mux.Vars(r)["noticeId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /notices/{id}/votes - Invalid notice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNoticeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /notices/{id}/votes - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CastVoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notices/{id}/votes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.CastVote(r.Context(), &models.CastVoteRequest{
		NoticeID: noticeID,
		UserID:   userID,
		Choice:   req.Choice,
	})
	if err != nil {
		switch {
		case errors.Is(err, noticesService.ErrNoticeNotFound):
			h.logger.Warn("POST /notices/{id}/votes - Notice not found: notice_id=%d", noticeID)
			handlers.RespondNotFound(w, msgNoticeNotFound)

		case errors.Is(err, noticesService.ErrVotingClosed):
			h.logger.Warn("POST /notices/{id}/votes - Voting closed: notice_id=%d", noticeID)
			handlers.RespondError(w, http.StatusConflict, msgVotingClosed)

		case errors.Is(err, noticesService.ErrVoterNotActive):
			h.logger.Warn("POST /notices/{id}/votes - Voter not active: user_id=%d", userID)
			handlers.RespondError(w, http.StatusForbidden, msgVoterNotActive)

		case errors.Is(err, noticesService.ErrInvalidInput):
			h.logger.Warn("POST /notices/{id}/votes - Invalid choice: %v", err)
			handlers.RespondBadRequest(w, msgInvalidChoice)

		default:
			h.logger.Error("POST /notices/{id}/votes - Failed to cast vote: notice_id=%d, error=%v", noticeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notices/{id}/votes - Vote recorded: notice_id=%d, user_id=%d", noticeID, userID)
	handlers.RespondNoContent(w)
}
