package create_booking

import (
	"time"

	"github.com/dungeon-app/booking-service/pkg/types"
)

// Request carries the booking creation input.
type Request struct {
	UserID         int64 // authenticated creator
	RoomID         int64
	Date           time.Time // civil date, association-local
	StartTime      types.TimeString
	ParticipantIDs []int64
	GuestCount     int
}

// Response is the created booking.
type Response struct {
	ID              int64
	RoomID          int64
	RoomName        string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	CrossesMidnight bool
	ParticipantIDs  []int64
	GuestCount      int
	Status          string

	CreatedAt time.Time
	UpdatedAt time.Time
}
