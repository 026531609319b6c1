package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/pkg/types"
)

func civilDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestComputeSlot_RegularSlot(t *testing.T) {
	comp := ComputeSlot("19:00")

	require.False(t, comp.IsZero())
	assert.Equal(t, 270, comp.DurationMinutes)
	assert.Equal(t, 4.5, comp.Hours())
	assert.Equal(t, types.TimeString("23:30"), comp.EndTime)
	assert.False(t, comp.CrossesMidnight)
}

func TestComputeSlot_NonCanonicalStartGetsRegularDuration(t *testing.T) {
	comp := ComputeSlot("08:15")

	require.False(t, comp.IsZero())
	assert.Equal(t, 270, comp.DurationMinutes)
	assert.Equal(t, types.TimeString("12:45"), comp.EndTime)
}

func TestComputeSlot_Corujao(t *testing.T) {
	comp := ComputeSlot("23:00")

	require.False(t, comp.IsZero())
	assert.Equal(t, 480, comp.DurationMinutes)
	assert.Equal(t, 8.0, comp.Hours())
	assert.Equal(t, types.TimeString("07:00"), comp.EndTime)
	assert.True(t, comp.CrossesMidnight)
}

func TestComputeSlot_InvalidInputReturnsSentinel(t *testing.T) {
	for _, input := range []string{"", "25:00", "abc", "9h30"} {
		comp := ComputeSlot(types.TimeString(input))

		assert.True(t, comp.IsZero(), "input %q", input)
		assert.Equal(t, 0, comp.DurationMinutes, "input %q", input)
		assert.Equal(t, types.TimeString(""), comp.EndTime, "input %q", input)
	}
}

func TestResolveDayBookings_IncludesPreviousDayCorujao(t *testing.T) {
	selected := civilDate(2026, time.March, 10)

	corujao := &domain.Booking{ID: 1, Date: civilDate(2026, time.March, 9), StartTime: "23:00"}
	afternoon := &domain.Booking{ID: 2, Date: civilDate(2026, time.March, 9), StartTime: "14:00"}
	today := &domain.Booking{ID: 3, Date: selected, StartTime: "19:00"}

	got := ResolveDayBookings(selected, []*domain.Booking{corujao, afternoon, today})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestResolveDayBookings_PreservesInputOrder(t *testing.T) {
	selected := civilDate(2026, time.March, 10)

	later := &domain.Booking{ID: 1, Date: selected, StartTime: "19:00"}
	earlier := &domain.Booking{ID: 2, Date: selected, StartTime: "14:00"}

	got := ResolveDayBookings(selected, []*domain.Booking{later, earlier})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestResolveDayBookings_EmptyInput(t *testing.T) {
	selected := civilDate(2026, time.March, 10)

	assert.Empty(t, ResolveDayBookings(selected, nil))
	assert.Empty(t, ResolveDayBookings(selected, []*domain.Booking{}))
}

func TestBuildSchedule_ExcludesUnbookableRooms(t *testing.T) {
	date := civilDate(2026, time.March, 10)
	rooms := []*domain.Room{
		{ID: 1, Name: "Sala Azul", Status: domain.RoomAvailable},
		{ID: 2, Name: "Sala Verde", Status: domain.RoomUnderMaintenance},
		{ID: 3, Name: "Sala Vermelha", Status: domain.RoomOccupied},
	}
	bookings := []*domain.Booking{
		{ID: 10, RoomID: 2, Date: date, StartTime: "19:00", Status: domain.BookingConfirmed},
	}

	got := BuildSchedule(date, rooms, bookings)

	require.Len(t, got.Rooms, 1)
	assert.Equal(t, int64(1), got.Rooms[0].Room.ID)
}

func TestBuildSchedule_BoundaryOverlapKeepsBothEntries(t *testing.T) {
	date := civilDate(2026, time.March, 10)
	rooms := []*domain.Room{{ID: 1, Name: "Sala Azul", Status: domain.RoomAvailable}}

	evening := &domain.Booking{ID: 1, RoomID: 1, Date: date, StartTime: "19:00", Status: domain.BookingConfirmed}
	corujao := &domain.Booking{ID: 2, RoomID: 1, Date: date, StartTime: "23:00", Status: domain.BookingConfirmed}

	got := BuildSchedule(date, rooms, []*domain.Booking{evening, corujao})

	require.Len(t, got.Rooms, 1)
	entries := got.Rooms[0].Entries
	require.Len(t, entries, 2, "overlapping entries must not be merged or dropped")
	assert.Equal(t, types.TimeString("23:30"), entries[0].End)
	assert.Equal(t, types.TimeString("07:00"), entries[1].End)
}

func TestBuildSchedule_FreeSlots(t *testing.T) {
	date := civilDate(2026, time.March, 10)
	rooms := []*domain.Room{{ID: 1, Name: "Sala Azul", Status: domain.RoomAvailable}}

	evening := &domain.Booking{ID: 1, RoomID: 1, Date: date, StartTime: "19:00", Status: domain.BookingConfirmed}

	got := BuildSchedule(date, rooms, []*domain.Booking{evening})

	require.Len(t, got.Rooms, 1)
	free := got.Rooms[0].FreeSlots
	// 19:00-23:30 overlaps the corujão's first half hour, so only the
	// afternoon slot remains free.
	require.Len(t, free, 1)
	assert.Equal(t, "tarde", free[0].ID)
}

func TestBuildSchedule_CancelledBookingFreesSlot(t *testing.T) {
	date := civilDate(2026, time.March, 10)
	rooms := []*domain.Room{{ID: 1, Name: "Sala Azul", Status: domain.RoomAvailable}}

	cancelled := &domain.Booking{ID: 1, RoomID: 1, Date: date, StartTime: "14:00", Status: domain.BookingCancelled}

	got := BuildSchedule(date, rooms, []*domain.Booking{cancelled})

	require.Len(t, got.Rooms, 1)
	assert.Len(t, got.Rooms[0].Entries, 1, "cancelled booking stays visible")
	assert.Len(t, got.Rooms[0].FreeSlots, 3, "cancelled booking does not occupy its slot")
}

func TestBuildSchedule_PreviousDayCorujaoOccupiesEarlyHours(t *testing.T) {
	date := civilDate(2026, time.March, 10)
	rooms := []*domain.Room{{ID: 1, Name: "Sala Azul", Status: domain.RoomAvailable}}

	tail := &domain.Booking{ID: 1, RoomID: 1, Date: civilDate(2026, time.March, 9), StartTime: "23:00", Status: domain.BookingConfirmed}

	day := ResolveDayBookings(date, []*domain.Booking{tail})
	got := BuildSchedule(date, rooms, day)

	require.Len(t, got.Rooms, 1)
	require.Len(t, got.Rooms[0].Entries, 1)
	assert.True(t, got.Rooms[0].Entries[0].FromPreviousDay)
	// The tail ends 07:00, before any slot of the selected day starts.
	assert.Len(t, got.Rooms[0].FreeSlots, 3)
}

func TestBuildSchedule_UnschedulableBookingSurfacedNotDropped(t *testing.T) {
	date := civilDate(2026, time.March, 10)
	rooms := []*domain.Room{{ID: 1, Name: "Sala Azul", Status: domain.RoomAvailable}}

	broken := &domain.Booking{ID: 1, RoomID: 1, Date: date, StartTime: "99:99", Status: domain.BookingConfirmed}

	got := BuildSchedule(date, rooms, []*domain.Booking{broken})

	require.Len(t, got.Rooms, 1)
	assert.Empty(t, got.Rooms[0].Entries)
	require.Len(t, got.Rooms[0].Unschedulable, 1)
	assert.Equal(t, int64(1), got.Rooms[0].Unschedulable[0].ID)
}

func TestCanInitiateBooking(t *testing.T) {
	assert.True(t, CanInitiateBooking(&domain.User{Status: domain.UserActive, Role: domain.RoleMember}))
	assert.False(t, CanInitiateBooking(&domain.User{Status: domain.UserPending, Role: domain.RoleAdmin}))
	assert.False(t, CanInitiateBooking(&domain.User{Status: domain.UserBlocked, Role: domain.RoleEditor}))
	assert.False(t, CanInitiateBooking(nil))
}

func TestClassify(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2026, time.March, 10, 19, 0, 0, 0, loc)

	booking := &domain.Booking{Date: time.Date(2026, time.March, 10, 0, 0, 0, 0, loc), StartTime: "19:00"}

	t.Run("start equal to now is past", func(t *testing.T) {
		assert.Equal(t, PhasePast, Classify(booking, now))
	})

	t.Run("start after now is upcoming", func(t *testing.T) {
		assert.Equal(t, PhaseUpcoming, Classify(booking, now.Add(-time.Minute)))
	})

	t.Run("start before now is past", func(t *testing.T) {
		assert.Equal(t, PhasePast, Classify(booking, now.Add(time.Minute)))
	})

	t.Run("unparseable start is past", func(t *testing.T) {
		broken := &domain.Booking{Date: booking.Date, StartTime: ""}
		assert.Equal(t, PhasePast, Classify(broken, now))
	})
}
