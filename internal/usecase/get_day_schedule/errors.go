package get_day_schedule

import "errors"

var (
	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("get_day_schedule: internal error")
)
