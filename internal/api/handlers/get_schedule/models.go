package get_schedule

import (
	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/internal/schedule"
)

// EntryResponse is one booking on the grid.
type EntryResponse struct {
	BookingID       int64   `json:"bookingId"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	GuestCount      int     `json:"guestCount"`
	Participants    []int64 `json:"participants"`
	FromPreviousDay bool    `json:"fromPreviousDay,omitempty"`
}

// FreeSlotResponse is one open canonical slot.
type FreeSlotResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RoomScheduleResponse is one room's day view.
type RoomScheduleResponse struct {
	RoomID    int64              `json:"roomId"`
	RoomName  string             `json:"roomName"`
	Capacity  int                `json:"capacity"`
	Entries   []EntryResponse    `json:"entries"`
	FreeSlots []FreeSlotResponse `json:"freeSlots"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date  string                 `json:"date"`
	Rooms []RoomScheduleResponse `json:"rooms"`
}

// FromUseCaseResponse converts the assembled grid into the HTTP model.
func FromUseCaseResponse(grid schedule.ScheduleByRoom) *ScheduleResponse {
	out := &ScheduleResponse{
		Date:  grid.Date.Format(domain.DateFormat),
		Rooms: make([]RoomScheduleResponse, 0, len(grid.Rooms)),
	}

	for _, rs := range grid.Rooms {
		room := RoomScheduleResponse{
			RoomID:    rs.Room.ID,
			RoomName:  rs.Room.Name,
			Capacity:  rs.Room.Capacity,
			Entries:   make([]EntryResponse, 0, len(rs.Entries)),
			FreeSlots: make([]FreeSlotResponse, 0, len(rs.FreeSlots)),
		}

		for _, e := range rs.Entries {
			room.Entries = append(room.Entries, EntryResponse{
				BookingID:       e.Booking.ID,
				StartTime:       e.Start.String(),
				EndTime:         e.End.String(),
				Status:          string(e.Booking.Status),
				GuestCount:      e.Booking.GuestCount,
				Participants:    e.Booking.ParticipantIDs,
				FromPreviousDay: e.FromPreviousDay,
			})
		}

		for _, s := range rs.FreeSlots {
			comp := schedule.ComputeSlot(s.StartTime)
			room.FreeSlots = append(room.FreeSlots, FreeSlotResponse{
				ID:        s.ID,
				StartTime: s.StartTime.String(),
				EndTime:   comp.EndTime.String(),
			})
		}

		out.Rooms = append(out.Rooms, room)
	}

	return out
}
