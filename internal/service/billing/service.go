package billing

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dungeon-app/booking-service/internal/domain"
	invoiceRepo "github.com/dungeon-app/booking-service/internal/infra/storage/billing"
	"github.com/dungeon-app/booking-service/internal/integrations/payments"
	"github.com/dungeon-app/booking-service/internal/service/billing/models"
	"github.com/dungeon-app/booking-service/pkg/ptr"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Service manages membership invoices and their settlement through the
// payment provider.
type Service struct {
	invoiceRepo InvoiceRepository
	userRepo    UserRepository
	payments    PaymentsClient
	audit       AuditRecorder
	// priceTable maps membership category to the monthly fee in cents.
	priceTable map[string]int64
	logger     Logger
}

// NewService creates a billing service. priceTable comes from config.
func NewService(
	invoiceRepo InvoiceRepository,
	userRepo UserRepository,
	paymentsClient PaymentsClient,
	audit AuditRecorder,
	priceTable map[string]int64,
	logger Logger,
) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		payments:    paymentsClient,
		audit:       audit,
		priceTable:  priceTable,
		logger:      logger,
	}
}

// GenerateInvoices creates the period's invoices for every active
// member whose category has a price. Members already invoiced for the
// period are skipped, so the operation is safe to re-run.
func (s *Service) GenerateInvoices(ctx context.Context, req *models.GenerateInvoicesRequest) (*models.GenerateInvoicesResponse, error) {
	s.logger.Info("GenerateInvoices: period=%s by actor=%d", req.Period, req.ActorID)

	if !periodPattern.MatchString(req.Period) {
		return nil, fmt.Errorf("%w: period must be YYYY-MM", ErrInvalidInput)
	}

	members, err := s.userRepo.List(ctx, ptr.Ptr(domain.UserActive))
	if err != nil {
		s.logger.Error("GenerateInvoices: user listing failed: %v", err)
		return nil, fmt.Errorf("%w: GenerateInvoices - list users: %v", ErrInternal, err)
	}

	resp := &models.GenerateInvoicesResponse{Period: req.Period}

	for _, member := range members {
		amount, priced := s.priceTable[member.Category]
		if !priced {
			s.logger.Warn("GenerateInvoices: user id=%d category=%q has no price, skipping", member.ID, member.Category)
			resp.Skipped++
			continue
		}

		invoice := &domain.Invoice{
			UserID:      member.ID,
			Period:      req.Period,
			AmountCents: amount,
			Status:      domain.InvoiceOpen,
		}

		if _, err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			if errors.Is(err, invoiceRepo.ErrDuplicatePeriod) {
				resp.Skipped++
				continue
			}
			s.logger.Error("GenerateInvoices: create failed for user id=%d: %v", member.ID, err)
			return nil, fmt.Errorf("%w: GenerateInvoices - create invoice: %v", ErrInternal, err)
		}
		resp.Created++
	}

	s.audit.Record(ctx, req.ActorID, "billing.generate", "invoice", req.Period,
		fmt.Sprintf("created=%d skipped=%d", resp.Created, resp.Skipped))

	s.logger.Info("GenerateInvoices: period=%s created=%d skipped=%d", req.Period, resp.Created, resp.Skipped)
	return resp, nil
}

// ListByUser fetches a member's invoices. Members see only their own;
// administrators may inspect anyone's (enforced by the handler passing
// IsAdmin-checked requests).
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.InvoiceListResponse, error) {
	invoices, err := s.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainInvoiceList(invoices), nil
}

// PayInvoice charges an open invoice through the payment provider and
// marks it paid on approval. Provider outages leave the invoice open.
func (s *Service) PayInvoice(ctx context.Context, req *models.PayInvoiceRequest) (*models.InvoiceResponse, error) {
	s.logger.Info("PayInvoice: invoice id=%d by user=%d", req.InvoiceID, req.UserID)

	invoice, err := s.invoiceRepo.GetByID(ctx, req.InvoiceID)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("PayInvoice: repository error for invoice id=%d: %v", req.InvoiceID, err)
		return nil, fmt.Errorf("%w: PayInvoice - repository error: %v", ErrInternal, err)
	}

	if invoice.UserID != req.UserID && !req.IsAdmin {
		s.logger.Warn("PayInvoice: user=%d denied access to invoice id=%d", req.UserID, req.InvoiceID)
		return nil, ErrAccessDenied
	}

	if !invoice.IsPayable() {
		s.logger.Warn("PayInvoice: invoice id=%d status=%s is not payable", invoice.ID, invoice.Status)
		return nil, ErrAlreadyPaid
	}

	charge, err := s.payments.CreateChargeWithGracefulDegradation(ctx, &payments.ChargeRequest{
		AmountCents: invoice.AmountCents,
		Currency:    "BRL",
		Description: fmt.Sprintf("Mensalidade %s", invoice.Period),
		Reference:   strconv.FormatInt(invoice.ID, 10),
	})
	if err != nil {
		if errors.Is(err, payments.ErrChargeDeclined) {
			return nil, ErrChargeDeclined
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	if err := s.invoiceRepo.MarkPaid(ctx, invoice.ID, charge.ID); err != nil {
		// The charge went through; surface loudly so the mismatch gets
		// reconciled against the provider's records.
		s.logger.Error("PayInvoice: charge %s approved but MarkPaid failed for invoice id=%d: %v",
			charge.ID, invoice.ID, err)
		return nil, fmt.Errorf("%w: PayInvoice - mark paid: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.UserID, "invoice.pay", "invoice", strconv.FormatInt(invoice.ID, 10), charge.ID)

	paid, err := s.invoiceRepo.GetByID(ctx, invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: PayInvoice - reload: %v", ErrInternal, err)
	}

	s.logger.Info("PayInvoice: invoice id=%d paid with charge=%s", invoice.ID, charge.ID)
	return models.FromDomainInvoice(paid), nil
}
