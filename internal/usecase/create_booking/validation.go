package create_booking

import (
	"fmt"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/internal/schedule"
	"github.com/dungeon-app/booking-service/pkg/types"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.ParticipantIDs) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		if id <= 0 {
			return fmt.Errorf("%w: participant IDs must be positive", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate participant id=%d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	if _, ok := seen[req.UserID]; !ok {
		return fmt.Errorf("%w: creator must be among the participants", ErrInvalidInput)
	}

	if req.GuestCount < 0 || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must be between 0 and %d", ErrInvalidInput, domain.MaxGuestCount)
	}

	return nil
}

func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// hasOverlap reports whether the candidate slot on date conflicts with
// any active booking in neighbors. Intervals are minutes relative to
// date's midnight; bookings on adjacent dates are shifted by a day so
// midnight-crossing sessions conflict across the date boundary. Strict
// inequalities: slots that merely touch do not conflict.
func hasOverlap(date time.Time, comp schedule.SlotComputation, startTime types.TimeString, neighbors []*domain.Booking) (bool, error) {
	candStart, err := startTime.Minutes()
	if err != nil {
		return false, err
	}
	candEnd := candStart + comp.DurationMinutes

	for _, b := range neighbors {
		if !b.IsActive() {
			continue
		}

		other := schedule.ComputeSlot(b.StartTime)
		if other.IsZero() {
			continue
		}

		startMin, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}

		dayOffset := civilDayDelta(date, b.Date)
		startMin += dayOffset * 24 * 60
		endMin := startMin + other.DurationMinutes

		if startMin < candEnd && endMin > candStart {
			return true, nil
		}
	}

	return false, nil
}

// civilDayDelta returns the whole-day difference from base to other
// (-1 for yesterday, 0 for same day, +1 for tomorrow).
func civilDayDelta(base, other time.Time) int {
	b := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)
	o := time.Date(other.Year(), other.Month(), other.Day(), 0, 0, 0, 0, time.UTC)
	return int(o.Sub(b) / (24 * time.Hour))
}
