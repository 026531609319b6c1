package bookings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dungeon-app/booking-service/internal/domain"
	bookingRepo "github.com/dungeon-app/booking-service/internal/infra/storage/booking"
	"github.com/dungeon-app/booking-service/internal/schedule"
	"github.com/dungeon-app/booking-service/internal/service/bookings/models"
	"github.com/dungeon-app/booking-service/pkg/ptr"
)

// Service reads and cancels bookings. Creation lives in its own use
// case because of the transactional availability check.
type Service struct {
	bookingRepo  BookingRepository
	audit        AuditRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new booking service.
func NewService(bookingRepo BookingRepository, audit AuditRecorder, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		audit:        audit,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID fetches a booking. Participants see their own bookings;
// administrators see all.
func (s *Service) GetByID(ctx context.Context, id, requesterID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requesterID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if !booking.HasParticipant(requesterID) && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings fetches a member's booking history, newest first,
// each entry classified as upcoming or past.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BookingsFilter{
		ParticipantID:   ptr.Ptr(req.UserID),
		IncludeInactive: true,
	}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	var phase schedule.BookingPhase
	if req.Phase != nil {
		var err error
		phase, err = models.ToBookingPhase(*req.Phase)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid phase=%s for user=%d", *req.Phase, req.UserID)
			return nil, fmt.Errorf("%w: invalid phase", ErrInvalidInput)
		}
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	out := &models.BookingListResponse{Bookings: make([]*models.BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		item := models.FromDomainBookingWithPhase(b, now)
		if phase != "" && item.Phase != string(phase) {
			continue
		}
		out.Bookings = append(out.Bookings, item)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(out.Bookings), req.UserID)
	return out, nil
}

// Cancel cancels a booking. Any participant may cancel; administrators
// may cancel anyone's. The slot is freed immediately.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", req.BookingID, req.UserID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, req.BookingID, "Cancel")
	if err != nil {
		return err
	}

	if !booking.HasParticipant(req.UserID) && !req.IsAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", req.BookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, req.BookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.UserID, "booking.cancel", "booking", strconv.FormatInt(req.BookingID, 10), req.Reason)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", req.BookingID)
	return nil
}

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
