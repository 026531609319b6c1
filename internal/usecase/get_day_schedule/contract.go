package get_day_schedule

import (
	"context"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// BookingRepository lists bookings for the day window.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RoomProvider supplies the bookable room directory.
type RoomProvider interface {
	ListBookable(ctx context.Context) ([]*domain.Room, error)
}

// Logger is the logging surface the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
