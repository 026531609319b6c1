package rooms

import (
	"context"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// RoomRepository is the persistence surface for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository is the slice of the booking repository the room
// service needs to guard deletions.
type BookingRepository interface {
	CountActiveForRoomAfter(ctx context.Context, roomID int64, fromDate time.Time) (int, error)
}

// AuditRecorder records administrative actions.
type AuditRecorder interface {
	Record(ctx context.Context, actorID int64, action, entity, entityID, detail string)
}

// TimeProvider supplies the current time in the association's zone.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
