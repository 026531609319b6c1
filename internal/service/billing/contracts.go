package billing

import (
	"context"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/internal/integrations/payments"
)

// InvoiceRepository is the persistence surface for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Invoice, error)
	MarkPaid(ctx context.Context, id int64, chargeID string) error
}

// UserRepository is the slice of the user repository billing needs to
// enumerate active members during generation.
type UserRepository interface {
	List(ctx context.Context, status *domain.UserStatus) ([]*domain.User, error)
}

// PaymentsClient charges members through the payment provider.
type PaymentsClient interface {
	CreateChargeWithGracefulDegradation(ctx context.Context, req *payments.ChargeRequest) (*payments.Charge, error)
}

// AuditRecorder records billing actions.
type AuditRecorder interface {
	Record(ctx context.Context, actorID int64, action, entity, entityID, detail string)
}

// Logger is the logging surface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
