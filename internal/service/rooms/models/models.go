package models

import (
	"fmt"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// CreateRoomRequest is the service-level request to create a room.
type CreateRoomRequest struct {
	ActorID  int64
	Name     string
	Capacity int
	Status   string
}

// UpdateRoomRequest is the service-level request to update a room.
type UpdateRoomRequest struct {
	ActorID  int64
	RoomID   int64
	Name     string
	Capacity int
	Status   string
}

// RoomResponse is the service-level view of a room.
type RoomResponse struct {
	ID        int64
	Name      string
	Capacity  int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomListResponse wraps a room listing.
type RoomListResponse struct {
	Rooms []*RoomResponse
}

// ToDomainRoomStatus validates and converts a status string.
func ToDomainRoomStatus(s string) (domain.RoomStatus, error) {
	status := domain.RoomStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown room status %q", s)
	}
	return status, nil
}

// FromDomainRoom converts a domain room.
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList converts a domain room slice.
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	out := &RoomListResponse{Rooms: make([]*RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		out.Rooms = append(out.Rooms, FromDomainRoom(r))
	}
	return out
}
