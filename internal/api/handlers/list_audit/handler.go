package list_audit

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/domain"
)

const msgInvalidFilter = "filtro de auditoria inválido"

type AuditService interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AuditEventResponse HTTP response model
type AuditEventResponse struct {
	ID        string `json:"id"`
	ActorID   int64  `json:"actorId"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// AuditListResponse HTTP response model
type AuditListResponse struct {
	Events []AuditEventResponse `json:"events"`
}

type Handler struct {
	service AuditService
	logger  Logger
}

func NewHandler(service AuditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/audit?actorId=&entity=&action=&since=&until=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /audit - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	events, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /audit - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := AuditListResponse{Events: make([]AuditEventResponse, 0, len(events))}
	for _, ev := range events {
		resp.Events = append(resp.Events, AuditEventResponse{
			ID:        ev.ID,
			ActorID:   ev.ActorID,
			Action:    ev.Action,
			Entity:    ev.Entity,
			EntityID:  ev.EntityID,
			Detail:    ev.Detail,
			CreatedAt: ev.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func parseFilter(r *http.Request) (domain.AuditFilter, error) {
	var filter domain.AuditFilter
	q := r.URL.Query()

	if raw := q.Get("actorId"); raw != "" {
		actorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.ActorID = &actorID
	}
	if entity := q.Get("entity"); entity != "" {
		filter.Entity = &entity
	}
	if action := q.Get("action"); action != "" {
		filter.Action = &action
	}
	if raw := q.Get("since"); raw != "" {
		since, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, err
		}
		filter.Since = &since
	}
	if raw := q.Get("until"); raw != "" {
		until, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, err
		}
		filter.Until = &until
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}

	return filter, nil
}
