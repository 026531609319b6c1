package domain

import "time"

// InvoiceStatus represents the payment state of a membership invoice.
type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "Em Aberto"
	InvoicePaid    InvoiceStatus = "Paga"
	InvoiceOverdue InvoiceStatus = "Atrasada"
)

// IsValid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceOpen, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// Invoice is a membership fee charge for one billing period.
type Invoice struct {
	ID          int64
	UserID      int64
	Period      string // "YYYY-MM"
	AmountCents int64
	Status      InvoiceStatus

	// ChargeID is the payment provider's identifier, set once charged.
	ChargeID *string
	PaidAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPayable reports whether the invoice can still be charged.
func (i *Invoice) IsPayable() bool {
	return i.Status == InvoiceOpen || i.Status == InvoiceOverdue
}
