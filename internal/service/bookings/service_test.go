package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeon-app/booking-service/internal/domain"
	bookingRepo "github.com/dungeon-app/booking-service/internal/infra/storage/booking"
	"github.com/dungeon-app/booking-service/internal/service/bookings/models"
)

type fakeRepo struct {
	bookings  map[int64]*domain.Booking
	cancelled []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.ParticipantID != nil && !b.HasParticipant(*filter.ParticipantID) {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, _ string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeAudit struct{ actions []string }

func (f *fakeAudit) Record(_ context.Context, _ int64, action, _, _, _ string) {
	f.actions = append(f.actions, action)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(repo *fakeRepo, now time.Time) (*Service, *fakeAudit) {
	audit := &fakeAudit{}
	return NewService(repo, audit, fixedClock{now: now}, nopLogger{}), audit
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, RoomID: 1, Date: date(2026, 3, 15), StartTime: "19:00",
			ParticipantIDs: []int64{10, 11}, Status: domain.BookingConfirmed},
	}}
	svc, _ := newService(repo, time.Now())

	resp, err := svc.GetByID(context.Background(), 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, "23:30", resp.EndTime)
	assert.Equal(t, 270, resp.DurationMinutes)

	_, err = svc.GetByID(context.Background(), 1, 99, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Administrators bypass the participant check.
	_, err = svc.GetByID(context.Background(), 1, 99, true)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 42, 10, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_Phase(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, RoomID: 1, Date: date(2026, 3, 15), StartTime: "19:00",
			ParticipantIDs: []int64{10}, Status: domain.BookingConfirmed},
		2: {ID: 2, RoomID: 1, Date: date(2026, 3, 14), StartTime: "19:00",
			ParticipantIDs: []int64{10}, Status: domain.BookingConfirmed},
	}}
	svc, _ := newService(repo, now)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	phases := map[int64]string{}
	for _, b := range resp.Bookings {
		phases[b.ID] = b.Phase
	}
	assert.Equal(t, "upcoming", phases[1])
	assert.Equal(t, "past", phases[2])
}

func TestGetUserBookings_PhaseFilter(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, RoomID: 1, Date: date(2026, 3, 15), StartTime: "19:00",
			ParticipantIDs: []int64{10}, Status: domain.BookingConfirmed},
		2: {ID: 2, RoomID: 1, Date: date(2026, 3, 14), StartTime: "19:00",
			ParticipantIDs: []int64{10}, Status: domain.BookingConfirmed},
	}}
	svc, _ := newService(repo, now)

	upcoming := "upcoming"
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10, Phase: &upcoming})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	past := "past"
	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10, Phase: &past})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)

	bad := "ongoing"
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10, Phase: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc, _ := newService(&fakeRepo{}, time.Now())

	bad := "confirmed"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, ParticipantIDs: []int64{10}, Status: domain.BookingConfirmed},
		2: {ID: 2, ParticipantIDs: []int64{10}, Status: domain.BookingCancelled},
	}}
	svc, audit := newService(repo, time.Now())

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 1, UserID: 10, Reason: "imprevisto"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
	assert.Contains(t, audit.actions, "booking.cancel")

	err = svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 2, UserID: 10})
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 1, UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
