package rooms

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
	roomRepo "github.com/dungeon-app/booking-service/internal/infra/storage/room"
	"github.com/dungeon-app/booking-service/internal/service/rooms/models"
)

// Service manages the room directory. Role enforcement happens at the
// router (admin-only routes); the service validates data and guards
// referential rules.
type Service struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	audit        AuditRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a room service.
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	audit AuditRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		audit:        audit,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create adds a room to the directory.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: room name=%q by actor=%d", req.Name, req.ActorID)

	status, err := validateRoomInput(req.Name, req.Capacity, req.Status)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room := &domain.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
		Status:   status,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.ActorID, "room.create", "room", strconv.FormatInt(created.ID, 10), created.Name)

	s.logger.Info("Create: room id=%d created", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID fetches a single room.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoom(room), nil
}

// List fetches the full room directory, including rooms that are not
// currently bookable (management views need them).
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}

// ListBookable fetches the rooms that accept bookings, as domain values
// for the schedule use case.
func (s *Service) ListBookable(ctx context.Context) ([]*domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBookable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookable - repository error: %v", ErrInternal, err)
	}

	bookable := make([]*domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.IsBookable() {
			bookable = append(bookable, r)
		}
	}
	return bookable, nil
}

// Update edits a room's name, capacity and status.
func (s *Service) Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: room id=%d by actor=%d", req.RoomID, req.ActorID)

	status, err := validateRoomInput(req.Name, req.Capacity, req.Status)
	if err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", req.RoomID, err)
		return nil, err
	}

	room := &domain.Room{
		ID:       req.RoomID,
		Name:     req.Name,
		Capacity: req.Capacity,
		Status:   status,
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.ActorID, "room.update", "room", strconv.FormatInt(req.RoomID, 10), room.Name)

	updated, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		s.logger.Error("Update: reload failed for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Update - reload: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(updated), nil
}

// Delete removes a room, refusing while future non-cancelled bookings
// reference it.
func (s *Service) Delete(ctx context.Context, actorID, roomID int64) error {
	s.logger.Info("Delete: room id=%d by actor=%d", roomID, actorID)

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.bookingRepo.CountActiveForRoomAfter(ctx, roomID, today)
	if err != nil {
		s.logger.Error("Delete: booking count failed for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: Delete - booking count: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: room id=%d has %d future bookings", roomID, count)
		return ErrRoomHasBookings
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actorID, "room.delete", "room", strconv.FormatInt(roomID, 10), "")

	s.logger.Info("Delete: room id=%d deleted", roomID)
	return nil
}

func validateRoomInput(name string, capacity int, status string) (domain.RoomStatus, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if capacity <= 0 {
		return "", fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	st, err := models.ToDomainRoomStatus(status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return st, nil
}
