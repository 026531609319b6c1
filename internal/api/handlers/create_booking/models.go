package create_booking

import (
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
	createBooking "github.com/dungeon-app/booking-service/internal/usecase/create_booking"
	"github.com/dungeon-app/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID         int64   `json:"roomId"`
	Date           string  `json:"date"`      // "2026-03-15"
	StartTime      string  `json:"startTime"` // "19:00"
	ParticipantIDs []int64 `json:"participantIds"`
	GuestCount     int     `json:"guestCount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	RoomID          int64   `json:"roomId"`
	RoomName        string  `json:"roomName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	CrossesMidnight bool    `json:"crossesMidnight"`
	ParticipantIDs  []int64 `json:"participantIds"`
	GuestCount      int     `json:"guestCount"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
// The creator comes from the authenticated context, never the body.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:         userID,
		RoomID:         r.RoomID,
		Date:           date,
		StartTime:      startTime,
		ParticipantIDs: r.ParticipantIDs,
		GuestCount:     r.GuestCount,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		CrossesMidnight: resp.CrossesMidnight,
		ParticipantIDs:  resp.ParticipantIDs,
		GuestCount:      resp.GuestCount,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
