package rooms

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist.
	ErrRoomNotFound = errors.New("rooms.service: room not found")

	// ErrRoomHasBookings is returned when deleting a room that still has
	// future non-cancelled bookings.
	ErrRoomHasBookings = errors.New("rooms.service: room has future bookings")

	// ErrInvalidInput is returned on validation failures.
	ErrInvalidInput = errors.New("rooms.service: invalid input")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("rooms.service: internal error")
)
