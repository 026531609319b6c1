package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied is returned when the requester is neither a
	// participant nor an administrator.
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrCannotCancel is returned when the booking is already cancelled.
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInvalidInput is returned on validation failures.
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("bookings.service: internal error")
)
