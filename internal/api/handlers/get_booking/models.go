package get_booking

import (
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	RoomID             int64   `json:"roomId"`
	RoomName           string  `json:"roomName"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	CrossesMidnight    bool    `json:"crossesMidnight"`
	ParticipantIDs     []int64 `json:"participantIds"`
	GuestCount         int     `json:"guestCount"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse converts the service response into the HTTP model.
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	out := &BookingResponse{
		ID:                 resp.ID,
		RoomID:             resp.RoomID,
		RoomName:           resp.RoomName,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime,
		EndTime:            resp.EndTime,
		DurationMinutes:    resp.DurationMinutes,
		CrossesMidnight:    resp.CrossesMidnight,
		ParticipantIDs:     resp.ParticipantIDs,
		GuestCount:         resp.GuestCount,
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &formatted
	}

	return out
}
