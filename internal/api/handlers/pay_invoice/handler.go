package pay_invoice

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	billingService "github.com/dungeon-app/booking-service/internal/service/billing"
	"github.com/dungeon-app/booking-service/internal/service/billing/models"
)

const (
	msgInvalidInvoiceID     = "ID de fatura inválido"
	msgMissingUserID        = "usuário não autenticado"
	msgInvoiceNotFound      = "fatura não encontrada"
	msgForbidden            = "acesso negado"
	msgAlreadyPaid          = "a fatura já foi paga"
	msgChargeDeclined       = "pagamento recusado pelo provedor"
	msgPaymentUnavailable   = "serviço de pagamento indisponível, tente novamente mais tarde"
)

type BillingService interface {
	PayInvoice(ctx context.Context, req *models.PayInvoiceRequest) (*models.InvoiceResponse, error)
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

// Handle POST /api/v1/invoices/{invoiceId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.ParseInt(mux.Vars(r)["invoiceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /invoices/{id}/pay - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /invoices/{id}/pay - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.PayInvoice(r.Context(), &models.PayInvoiceRequest{
		InvoiceID: invoiceID,
		UserID:    userID,
		IsAdmin:   middleware.IsAdmin(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, billingService.ErrInvoiceNotFound):
			h.logger.Warn("POST /invoices/{id}/pay - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		case errors.Is(err, billingService.ErrAccessDenied):
			h.logger.Warn("POST /invoices/{id}/pay - Access denied: invoice_id=%d, user_id=%d", invoiceID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgForbidden)

		case errors.Is(err, billingService.ErrAlreadyPaid):
			h.logger.Warn("POST /invoices/{id}/pay - Already paid: invoice_id=%d", invoiceID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

		case errors.Is(err, billingService.ErrChargeDeclined):
			h.logger.Warn("POST /invoices/{id}/pay - Charge declined: invoice_id=%d", invoiceID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgChargeDeclined)

		case errors.Is(err, billingService.ErrPaymentUnavailable):
			h.logger.Warn("POST /invoices/{id}/pay - Payment provider unavailable: invoice_id=%d", invoiceID)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /invoices/{id}/pay - Failed to pay invoice: invoice_id=%d, error=%v", invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := InvoiceResponse{
		ID:          result.ID,
		Period:      result.Period,
		AmountCents: result.AmountCents,
		Status:      result.Status,
		ChargeID:    result.ChargeID,
	}
	if result.PaidAt != nil {
		formatted := result.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &formatted
	}

	h.logger.Info("POST /invoices/{id}/pay - Invoice paid: invoice_id=%d by user_id=%d", invoiceID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
