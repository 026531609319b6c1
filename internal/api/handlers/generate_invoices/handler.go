package generate_invoices

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	billingService "github.com/dungeon-app/booking-service/internal/service/billing"
	"github.com/dungeon-app/booking-service/internal/service/billing/models"
)

const (
	msgMissingUserID = "usuário não autenticado"
	msgInvalidPeriod = "período inválido, use YYYY-MM"
)

type BillingService interface {
	GenerateInvoices(ctx context.Context, req *models.GenerateInvoicesRequest) (*models.GenerateInvoicesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// GenerateInvoicesResponse HTTP response model
type GenerateInvoicesResponse struct {
	Period  string `json:"period"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
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

// Handle POST /api/v1/billing/periods/{period}/invoices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	period := mux.Vars(r)["period"]

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /billing/periods/{period}/invoices - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GenerateInvoices(r.Context(), &models.GenerateInvoicesRequest{
		ActorID: actorID,
		Period:  period,
	})
	if err != nil {
		switch {
		case errors.Is(err, billingService.ErrInvalidInput):
			h.logger.Warn("POST /billing/periods/{period}/invoices - Invalid period %q", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("POST /billing/periods/{period}/invoices - Failed to generate: period=%s, error=%v", period, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /billing/periods/{period}/invoices - Generated: period=%s created=%d skipped=%d",
		result.Period, result.Created, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, GenerateInvoicesResponse{
		Period:  result.Period,
		Created: result.Created,
		Skipped: result.Skipped,
	})
}
