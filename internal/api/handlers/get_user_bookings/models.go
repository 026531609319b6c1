package get_user_bookings

import (
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model, including the history phase.
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
	Phase              string  `json:"phase"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromServiceResponse converts the service listing into the HTTP model.
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	out := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(resp.Bookings))}
	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:                 b.ID,
			RoomID:             b.RoomID,
			RoomName:           b.RoomName,
			Date:               b.Date.Format(domain.DateFormat),
			StartTime:          b.StartTime,
			EndTime:            b.EndTime,
			DurationMinutes:    b.DurationMinutes,
			CrossesMidnight:    b.CrossesMidnight,
			ParticipantIDs:     b.ParticipantIDs,
			GuestCount:         b.GuestCount,
			Status:             b.Status,
			Phase:              b.Phase,
			CancellationReason: b.CancellationReason,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
