package list_invoices

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	"github.com/dungeon-app/booking-service/internal/service/billing/models"
)

const (
	msgInvalidUserID = "ID de usuário inválido"
	msgMissingUserID = "usuário não autenticado"
	msgForbidden     = "acesso negado"
)

type BillingService interface {
	ListByUser(ctx context.Context, userID int64) (*models.InvoiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// InvoiceResponse HTTP response model
type InvoiceResponse struct {
	ID          int64   `json:"id"`
	Period      string  `json:"period"`
	AmountCents int64   `json:"amountCents"`
	Status      string  `json:"status"`
	ChargeID    *string `json:"chargeId,omitempty"`
	PaidAt      *string `json:"paidAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// InvoiceListResponse HTTP response model
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/invoices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/invoices - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/invoices - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Members see only their own invoices.
	if requesterID != userID && !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /users/{id}/invoices - Access denied: user_id=%d, requester_id=%d", userID, requesterID)
		handlers.RespondError(w, http.StatusForbidden, msgForbidden)
		return
	}

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/invoices - Failed to list invoices: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := InvoiceListResponse{Invoices: make([]InvoiceResponse, 0, len(result.Invoices))}
	for _, inv := range result.Invoices {
		item := InvoiceResponse{
			ID:          inv.ID,
			Period:      inv.Period,
			AmountCents: inv.AmountCents,
			Status:      inv.Status,
			ChargeID:    inv.ChargeID,
			CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
		}
		if inv.PaidAt != nil {
			formatted := inv.PaidAt.Format(time.RFC3339)
			item.PaidAt = &formatted
		}
		resp.Invoices = append(resp.Invoices, item)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
