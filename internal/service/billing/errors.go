package billing

import "errors"

var (
	// ErrInvoiceNotFound is returned when the invoice does not exist.
	ErrInvoiceNotFound = errors.New("billing.service: invoice not found")

	// ErrAccessDenied is returned when paying another member's invoice.
	ErrAccessDenied = errors.New("billing.service: access denied")

	// ErrAlreadyPaid is returned when charging a settled invoice.
	ErrAlreadyPaid = errors.New("billing.service: invoice already paid")

	// ErrChargeDeclined is returned when the provider declines the charge.
	ErrChargeDeclined = errors.New("billing.service: charge declined")

	// ErrPaymentUnavailable is returned when the provider is unreachable;
	// the invoice stays open for a later retry.
	ErrPaymentUnavailable = errors.New("billing.service: payment provider unavailable")

	// ErrInvalidInput is returned on validation failures.
	ErrInvalidInput = errors.New("billing.service: invalid input")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("billing.service: internal error")
)
