package create_booking

import "errors"

var (
	// ErrUserNotEligible is returned when the creator's membership
	// standing does not allow opening a booking.
	ErrUserNotEligible = errors.New("create_booking: user is not an active member")

	// ErrParticipantNotEligible is returned when a listed participant is
	// missing or not an active member.
	ErrParticipantNotEligible = errors.New("create_booking: participant is not an active member")

	// ErrRoomNotFound is returned when the room does not exist.
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable is returned when the room exists but accepts no
	// bookings (maintenance or administratively occupied).
	ErrRoomNotBookable = errors.New("create_booking: room is not bookable")

	// ErrInvalidSlot is returned when the start time is not one of the
	// canonical booking slots.
	ErrInvalidSlot = errors.New("create_booking: start time is not a bookable slot")

	// ErrInvalidDate is returned when the booking date is in the past.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotTaken is returned when the slot overlaps an active booking.
	ErrSlotTaken = errors.New("create_booking: slot overlaps an existing booking")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
