package bookings

import (
	"context"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// AuditRecorder records booking actions.
type AuditRecorder interface {
	Record(ctx context.Context, actorID int64, action, entity, entityID, detail string)
}

// TimeProvider supplies the current time for history classification.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
