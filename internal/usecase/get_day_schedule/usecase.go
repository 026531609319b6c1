package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/internal/schedule"
)

// UseCase assembles the public day view of the booking grid.
type UseCase struct {
	bookingRepo  BookingRepository
	roomProvider RoomProvider
	logger       Logger
}

// NewUseCase creates the day schedule use case.
func NewUseCase(bookingRepo BookingRepository, roomProvider RoomProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomProvider: roomProvider,
		logger:       logger,
	}
}

// Execute builds the schedule for the requested date. The fetch window
// starts one day earlier so last night's corujão tail appears on the
// morning of the selected day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	rooms, err := uc.roomProvider.ListBookable(ctx)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	dayBefore := req.Date.AddDate(0, 0, -1)
	window, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		StartDate: &dayBefore,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	dayBookings := schedule.ResolveDayBookings(req.Date, window)
	grid := schedule.BuildSchedule(req.Date, rooms, dayBookings)

	uc.logger.Info("GetDaySchedule: date=%s rooms=%d bookings=%d",
		req.Date.Format(domain.DateFormat), len(grid.Rooms), len(dayBookings))

	return &Response{Schedule: grid}, nil
}
