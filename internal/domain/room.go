package domain

import "time"

// RoomStatus represents the administrative status of a room.
type RoomStatus string

const (
	RoomAvailable        RoomStatus = "Disponível"
	RoomUnderMaintenance RoomStatus = "Em Manutenção"
	RoomOccupied         RoomStatus = "Ocupada"
)

// IsValid reports whether s is one of the known room statuses.
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomUnderMaintenance, RoomOccupied:
		return true
	}
	return false
}

// Room is a bookable space administered by the association. Bookings
// reference rooms but never own them; deleting a room is an
// administrative action blocked while future bookings exist.
type Room struct {
	ID       int64
	Name     string
	Capacity int // positive
	Status   RoomStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable reports whether the room appears on the booking grid.
// Rooms under maintenance or administratively occupied stay visible in
// management views but accept no bookings.
func (r *Room) IsBookable() bool {
	return r.Status == RoomAvailable
}
