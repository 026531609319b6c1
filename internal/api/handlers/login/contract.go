package login

import (
	"context"

	"github.com/dungeon-app/booking-service/internal/domain"
)

type UserAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type TokenGenerator interface {
	Generate(userID int64, role domain.UserRole) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
