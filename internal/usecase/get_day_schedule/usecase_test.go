package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeon-app/booking-service/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	gotStart *time.Time
	gotEnd   *time.Time
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.gotStart = filter.StartDate
	f.gotEnd = filter.EndDate
	return f.bookings, nil
}

type fakeRoomProvider struct {
	rooms []*domain.Room
}

func (f *fakeRoomProvider) ListBookable(context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_WindowAndGrid(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Name: "Sala Principal", Capacity: 8, Status: domain.RoomAvailable},
	}
	bookings := []*domain.Booking{
		// Yesterday's corujão, shown as the morning tail.
		{ID: 1, RoomID: 1, Date: date(2026, 3, 14), StartTime: "23:00", Status: domain.BookingConfirmed},
		// Today's evening session.
		{ID: 2, RoomID: 1, Date: date(2026, 3, 15), StartTime: "19:00", Status: domain.BookingConfirmed},
	}

	repo := &fakeBookingRepo{bookings: bookings}
	uc := NewUseCase(repo, &fakeRoomProvider{rooms: rooms}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 3, 15)})
	require.NoError(t, err)

	require.NotNil(t, repo.gotStart)
	require.NotNil(t, repo.gotEnd)
	assert.Equal(t, date(2026, 3, 14), *repo.gotStart)
	assert.Equal(t, date(2026, 3, 15), *repo.gotEnd)

	require.Len(t, resp.Schedule.Rooms, 1)
	rs := resp.Schedule.Rooms[0]
	require.Len(t, rs.Entries, 2)

	assert.True(t, rs.Entries[0].FromPreviousDay)
	assert.False(t, rs.Entries[1].FromPreviousDay)

	// Evening and corujão are taken; the afternoon stays open.
	require.Len(t, rs.FreeSlots, 1)
	assert.Equal(t, "tarde", rs.FreeSlots[0].ID)
}

func TestExecute_PreviousDayRegularSessionExcluded(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Name: "Sala Principal", Capacity: 8, Status: domain.RoomAvailable},
	}
	bookings := []*domain.Booking{
		{ID: 1, RoomID: 1, Date: date(2026, 3, 14), StartTime: "14:00", Status: domain.BookingConfirmed},
	}

	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeRoomProvider{rooms: rooms}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 3, 15)})
	require.NoError(t, err)

	require.Len(t, resp.Schedule.Rooms, 1)
	assert.Empty(t, resp.Schedule.Rooms[0].Entries)
	assert.Len(t, resp.Schedule.Rooms[0].FreeSlots, 3)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomProvider{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
