package users

import (
	"context"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// UserRepository is the persistence surface for member accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, status *domain.UserStatus) ([]*domain.User, error)
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
}

// AuditRecorder records administrative actions.
type AuditRecorder interface {
	Record(ctx context.Context, actorID int64, action, entity, entityID, detail string)
}

// Logger is the logging surface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
