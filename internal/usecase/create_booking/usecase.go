package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dungeon-app/booking-service/internal/domain"
	roomRepo "github.com/dungeon-app/booking-service/internal/infra/storage/room"
	userRepo "github.com/dungeon-app/booking-service/internal/infra/storage/user"
	"github.com/dungeon-app/booking-service/internal/schedule"
	"github.com/dungeon-app/booking-service/pkg/ptr"
)

// UseCase creates a room booking.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	userRepo     UserRepository
	txManager    TransactionManager
	audit        AuditRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking creation use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	audit AuditRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		audit:        audit,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute creates a booking. The availability check and the insert run
// in one serializable transaction so two members cannot take the same
// slot concurrently.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, date=%s, time=%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate the input shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. The booking date cannot be in the past.
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s rejected", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Only canonical slots can be booked.
	if !domain.IsCanonicalSlot(req.StartTime) {
		uc.logger.Warn("CreateBooking: start time %s is not a bookable slot", req.StartTime)
		return nil, ErrInvalidSlot
	}
	comp := schedule.ComputeSlot(req.StartTime)

	// 4. Eligibility gate: the creator must be an active member. The
	// check runs against fresh storage state, never against the token.
	creator, err := uc.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !schedule.CanInitiateBooking(creator) {
		uc.logger.Warn("CreateBooking: user=%d (status=%s) is not eligible", creator.ID, creator.Status)
		return nil, ErrUserNotEligible
	}

	// 5. Every other participant must also be an active member.
	for _, id := range req.ParticipantIDs {
		if id == req.UserID {
			continue
		}
		participant, err := uc.getUser(ctx, id)
		if err != nil {
			if errors.Is(err, ErrUserNotEligible) {
				return nil, fmt.Errorf("%w: id=%d", ErrParticipantNotEligible, id)
			}
			return nil, err
		}
		if participant.Status != domain.UserActive {
			uc.logger.Warn("CreateBooking: participant id=%d (status=%s) is not eligible", id, participant.Status)
			return nil, fmt.Errorf("%w: id=%d", ErrParticipantNotEligible, id)
		}
	}

	// 6. The room must exist and be bookable.
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d (status=%s) is not bookable", room.ID, room.Status)
		return nil, ErrRoomNotBookable
	}

	var result *domain.Booking

	// 7. Check availability and insert atomically.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Fetch the room's active bookings for the date and its
		// neighbors: yesterday's corujão runs into today, and a corujão
		// booked today runs into tomorrow.
		dayBefore := req.Date.AddDate(0, 0, -1)
		dayAfter := req.Date.AddDate(0, 0, 1)

		neighbors, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			RoomID:    ptr.Ptr(req.RoomID),
			StartDate: &dayBefore,
			EndDate:   &dayAfter,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 7.2. Reject on overlap.
		overlaps, err := hasOverlap(req.Date, comp, req.StartTime, neighbors)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateBooking: slot %s on %s in room id=%d is taken",
				req.StartTime, req.Date.Format(domain.DateFormat), req.RoomID)
			return ErrSlotTaken
		}

		// 7.3. Insert with the room name denormalized for history views.
		booking := &domain.Booking{
			RoomID:         room.ID,
			RoomName:       room.Name,
			Date:           req.Date,
			StartTime:      req.StartTime,
			ParticipantIDs: req.ParticipantIDs,
			GuestCount:     req.GuestCount,
			Status:         domain.BookingConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, req.UserID, "booking.create", "booking", strconv.FormatInt(result.ID, 10),
		fmt.Sprintf("room=%d date=%s time=%s", result.RoomID, result.Date.Format(domain.DateFormat), result.StartTime))

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		RoomID:          result.RoomID,
		RoomName:        result.RoomName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         comp.EndTime,
		DurationMinutes: comp.DurationMinutes,
		CrossesMidnight: comp.CrossesMidnight,
		ParticipantIDs:  result.ParticipantIDs,
		GuestCount:      result.GuestCount,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) getUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotEligible
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return u, nil
}
