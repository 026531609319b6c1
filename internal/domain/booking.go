package domain

import (
	"time"

	"github.com/dungeon-app/booking-service/pkg/types"
)

// BookingStatus represents the status of a room booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pendente"
	BookingConfirmed BookingStatus = "Confirmada"
	BookingCancelled BookingStatus = "Cancelada"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking represents a room session reserved by association members.
// The end time is never stored: it is always recomputed from the slot
// policy table, so the stored start time is the only authority.
type Booking struct {
	ID             int64
	RoomID         int64
	Date           time.Time // civil date, zeroed clock, association-local
	StartTime      types.TimeString
	ParticipantIDs []int64 // never empty
	GuestCount     int
	Status         BookingStatus

	// Denormalized for history views
	RoomName string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelled
}

// CanBeCancelled reports whether the booking may transition to Cancelada.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// HasParticipant reports whether userID is on the participant list.
func (b *Booking) HasParticipant(userID int64) bool {
	for _, id := range b.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// BookingsFilter is the filter accepted by the booking repository.
type BookingsFilter struct {
	RoomID          *int64
	ParticipantID   *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool // include cancelled bookings
}
