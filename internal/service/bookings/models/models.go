package models

import (
	"fmt"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/internal/schedule"
)

// GetUserBookingsRequest asks for one member's booking history.
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
	Phase  *string // "upcoming" | "past"
}

// ToBookingPhase validates and converts a phase filter.
func ToBookingPhase(s string) (schedule.BookingPhase, error) {
	switch phase := schedule.BookingPhase(s); phase {
	case schedule.PhaseUpcoming, schedule.PhasePast:
		return phase, nil
	}
	return "", fmt.Errorf("unknown booking phase %q", s)
}

// CancelBookingRequest cancels a booking.
type CancelBookingRequest struct {
	BookingID int64
	UserID    int64
	IsAdmin   bool
	Reason    string
}

// BookingResponse is the service-level view of a booking. End time and
// duration are recomputed from the slot rules, never stored.
type BookingResponse struct {
	ID              int64
	RoomID          int64
	RoomName        string
	Date            time.Time
	StartTime       string
	EndTime         string
	DurationMinutes int
	CrossesMidnight bool
	ParticipantIDs  []int64
	GuestCount      int
	Status          string

	// Phase is filled on history views only ("upcoming"/"past").
	Phase string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse wraps a booking listing.
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// FromDomainBooking converts a domain booking, resolving the slot.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		RoomID:             b.RoomID,
		RoomName:           b.RoomName,
		Date:               b.Date,
		StartTime:          b.StartTime.String(),
		ParticipantIDs:     b.ParticipantIDs,
		GuestCount:         b.GuestCount,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if comp := schedule.ComputeSlot(b.StartTime); !comp.IsZero() {
		resp.EndTime = comp.EndTime.String()
		resp.DurationMinutes = comp.DurationMinutes
		resp.CrossesMidnight = comp.CrossesMidnight
	}

	return resp
}

// FromDomainBookingList converts a domain booking slice.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := &BookingListResponse{Bookings: make([]*BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		out.Bookings = append(out.Bookings, FromDomainBooking(b))
	}
	return out
}

// FromDomainBookingWithPhase converts a booking for the history view.
func FromDomainBookingWithPhase(b *domain.Booking, now time.Time) *BookingResponse {
	resp := FromDomainBooking(b)
	resp.Phase = string(schedule.Classify(b, now))
	return resp
}
