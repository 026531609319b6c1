package payments

import "errors"

var (
	// ErrChargeDeclined is returned when the provider declines the charge.
	ErrChargeDeclined = errors.New("payments client: charge declined")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse is returned when the provider's response cannot
	// be interpreted.
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrServiceDegraded is returned when the provider is unreachable.
	// The invoice stays open and the member can retry later.
	ErrServiceDegraded = errors.New("payments provider unavailable: invoice left open")
)
