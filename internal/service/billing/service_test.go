package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeon-app/booking-service/internal/domain"
	invoiceRepo "github.com/dungeon-app/booking-service/internal/infra/storage/billing"
	"github.com/dungeon-app/booking-service/internal/integrations/payments"
	"github.com/dungeon-app/booking-service/internal/service/billing/models"
)

type fakeInvoiceRepo struct {
	invoices map[int64]*domain.Invoice
	nextID   int64
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	for _, existing := range f.invoices {
		if existing.UserID == inv.UserID && existing.Period == inv.Period {
			return nil, invoiceRepo.ErrDuplicatePeriod
		}
	}
	f.nextID++
	created := *inv
	created.ID = f.nextID
	f.invoices[created.ID] = &created
	return &created, nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*domain.Invoice, error) {
	if inv, ok := f.invoices[id]; ok {
		return inv, nil
	}
	return nil, invoiceRepo.ErrInvoiceNotFound
}

func (f *fakeInvoiceRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Invoice, error) {
	var out []*domain.Invoice
	for _, inv := range f.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) MarkPaid(_ context.Context, id int64, chargeID string) error {
	inv, ok := f.invoices[id]
	if !ok {
		return invoiceRepo.ErrInvoiceNotFound
	}
	inv.Status = domain.InvoicePaid
	inv.ChargeID = &chargeID
	return nil
}

type fakeUserRepo struct{ users []*domain.User }

func (f *fakeUserRepo) List(_ context.Context, status *domain.UserStatus) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.users {
		if status != nil && u.Status != *status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

type fakePayments struct {
	err      error
	requests []*payments.ChargeRequest
}

func (f *fakePayments) CreateChargeWithGracefulDegradation(_ context.Context, req *payments.ChargeRequest) (*payments.Charge, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &payments.Charge{ID: "ch_123", Status: "approved"}, nil
}

type fakeAudit struct{ actions []string }

func (f *fakeAudit) Record(_ context.Context, _ int64, action, _, _, _ string) {
	f.actions = append(f.actions, action)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var priceTable = map[string]int64{
	"Titular":   15000,
	"Estudante": 7500,
}

func newFixture(providerErr error) (*Service, *fakeInvoiceRepo, *fakePayments, *fakeAudit) {
	repo := &fakeInvoiceRepo{invoices: map[int64]*domain.Invoice{}}
	users := &fakeUserRepo{users: []*domain.User{
		{ID: 10, Status: domain.UserActive, Category: "Titular"},
		{ID: 11, Status: domain.UserActive, Category: "Estudante"},
		{ID: 12, Status: domain.UserActive, Category: "Convidado"}, // unpriced
		{ID: 13, Status: domain.UserPending, Category: "Titular"}, // not billed
	}}
	provider := &fakePayments{err: providerErr}
	audit := &fakeAudit{}
	svc := NewService(repo, users, provider, audit, priceTable, nopLogger{})
	return svc, repo, provider, audit
}

func TestGenerateInvoices_ActiveAndPricedOnly(t *testing.T) {
	svc, repo, _, audit := newFixture(nil)

	resp, err := svc.GenerateInvoices(context.Background(), &models.GenerateInvoicesRequest{
		ActorID: 1, Period: "2026-09",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 1, resp.Skipped) // unpriced category
	assert.Len(t, repo.invoices, 2)
	assert.Contains(t, audit.actions, "billing.generate")

	for _, inv := range repo.invoices {
		assert.Equal(t, domain.InvoiceOpen, inv.Status)
		assert.Equal(t, "2026-09", inv.Period)
	}
}

func TestGenerateInvoices_Rerun(t *testing.T) {
	svc, _, _, _ := newFixture(nil)
	ctx := context.Background()
	req := &models.GenerateInvoicesRequest{ActorID: 1, Period: "2026-09"}

	_, err := svc.GenerateInvoices(ctx, req)
	require.NoError(t, err)

	resp, err := svc.GenerateInvoices(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 3, resp.Skipped) // two already invoiced, one unpriced
}

func TestGenerateInvoices_InvalidPeriod(t *testing.T) {
	svc, _, _, _ := newFixture(nil)

	for _, period := range []string{"2026", "2026-13", "09-2026", "2026-9"} {
		_, err := svc.GenerateInvoices(context.Background(), &models.GenerateInvoicesRequest{ActorID: 1, Period: period})
		assert.ErrorIs(t, err, ErrInvalidInput, "period %q", period)
	}
}

func TestPayInvoice_Success(t *testing.T) {
	svc, repo, provider, audit := newFixture(nil)
	repo.invoices[1] = &domain.Invoice{ID: 1, UserID: 10, Period: "2026-09", AmountCents: 15000, Status: domain.InvoiceOpen}
	repo.nextID = 1

	resp, err := svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 1, UserID: 10})
	require.NoError(t, err)
	assert.Equal(t, string(domain.InvoicePaid), resp.Status)
	require.NotNil(t, resp.ChargeID)
	assert.Equal(t, "ch_123", *resp.ChargeID)

	require.Len(t, provider.requests, 1)
	assert.Equal(t, int64(15000), provider.requests[0].AmountCents)
	assert.Equal(t, "BRL", provider.requests[0].Currency)
	assert.Contains(t, audit.actions, "invoice.pay")
}

func TestPayInvoice_AccessControl(t *testing.T) {
	svc, repo, _, _ := newFixture(nil)
	repo.invoices[1] = &domain.Invoice{ID: 1, UserID: 10, Period: "2026-09", AmountCents: 15000, Status: domain.InvoiceOpen}

	_, err := svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 1, UserID: 11})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Administrators may settle any member's invoice.
	_, err = svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 1, UserID: 11, IsAdmin: true})
	assert.NoError(t, err)
}

func TestPayInvoice_AlreadyPaid(t *testing.T) {
	svc, repo, _, _ := newFixture(nil)
	repo.invoices[1] = &domain.Invoice{ID: 1, UserID: 10, Period: "2026-09", AmountCents: 15000, Status: domain.InvoicePaid}

	_, err := svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 1, UserID: 10})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestPayInvoice_OverdueIsPayable(t *testing.T) {
	svc, repo, _, _ := newFixture(nil)
	repo.invoices[1] = &domain.Invoice{ID: 1, UserID: 10, Period: "2026-08", AmountCents: 15000, Status: domain.InvoiceOverdue}

	resp, err := svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 1, UserID: 10})
	require.NoError(t, err)
	assert.Equal(t, string(domain.InvoicePaid), resp.Status)
}

func TestPayInvoice_Declined(t *testing.T) {
	svc, repo, _, _ := newFixture(payments.ErrChargeDeclined)
	repo.invoices[1] = &domain.Invoice{ID: 1, UserID: 10, Period: "2026-09", AmountCents: 15000, Status: domain.InvoiceOpen}

	_, err := svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 1, UserID: 10})
	assert.ErrorIs(t, err, ErrChargeDeclined)
	assert.Equal(t, domain.InvoiceOpen, repo.invoices[1].Status)
}

func TestPayInvoice_ProviderDown(t *testing.T) {
	svc, repo, _, _ := newFixture(payments.ErrServiceDegraded)
	repo.invoices[1] = &domain.Invoice{ID: 1, UserID: 10, Period: "2026-09", AmountCents: 15000, Status: domain.InvoiceOpen}

	_, err := svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 1, UserID: 10})
	assert.ErrorIs(t, err, ErrPaymentUnavailable)
	assert.Equal(t, domain.InvoiceOpen, repo.invoices[1].Status)
}

func TestPayInvoice_NotFound(t *testing.T) {
	svc, _, _, _ := newFixture(nil)

	_, err := svc.PayInvoice(context.Background(), &models.PayInvoiceRequest{InvoiceID: 99, UserID: 10})
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
