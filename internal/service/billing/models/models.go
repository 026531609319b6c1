package models

import (
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// GenerateInvoicesRequest asks for a billing period's invoices.
type GenerateInvoicesRequest struct {
	ActorID int64
	Period  string // "YYYY-MM"
}

// GenerateInvoicesResponse reports the generation outcome.
type GenerateInvoicesResponse struct {
	Period  string
	Created int
	Skipped int // members already invoiced or without a priced category
}

// PayInvoiceRequest charges an open invoice.
type PayInvoiceRequest struct {
	InvoiceID int64
	UserID    int64
	IsAdmin   bool
}

// InvoiceResponse is the service-level view of an invoice.
type InvoiceResponse struct {
	ID          int64
	UserID      int64
	Period      string
	AmountCents int64
	Status      string
	ChargeID    *string
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// InvoiceListResponse wraps an invoice listing.
type InvoiceListResponse struct {
	Invoices []*InvoiceResponse
}

// FromDomainInvoice converts a domain invoice.
func FromDomainInvoice(inv *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:          inv.ID,
		UserID:      inv.UserID,
		Period:      inv.Period,
		AmountCents: inv.AmountCents,
		Status:      string(inv.Status),
		ChargeID:    inv.ChargeID,
		PaidAt:      inv.PaidAt,
		CreatedAt:   inv.CreatedAt,
	}
}

// FromDomainInvoiceList converts a domain invoice slice.
func FromDomainInvoiceList(invoices []*domain.Invoice) *InvoiceListResponse {
	out := &InvoiceListResponse{Invoices: make([]*InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, FromDomainInvoice(inv))
	}
	return out
}
