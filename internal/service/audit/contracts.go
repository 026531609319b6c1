package audit

import (
	"context"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// AuditRepository is the persistence surface the service depends on.
type AuditRepository interface {
	Append(ctx context.Context, ev *domain.AuditEvent) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEvent, error)
}

// Logger is the logging surface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
