package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeon-app/booking-service/internal/domain"
	roomRepo "github.com/dungeon-app/booking-service/internal/infra/storage/room"
	userRepo "github.com/dungeon-app/booking-service/internal/infra/storage/user"
	"github.com/dungeon-app/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = 101
	f.created = &out
	return &out, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.existing {
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, errRoomMissing
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errUserMissing
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(_ context.Context, _ int64, action, _, _, _ string) {
	f.actions = append(f.actions, action)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	errRoomMissing = roomRepo.ErrRoomNotFound
	errUserMissing = userRepo.ErrUserNotFound
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newFixture(existing []*domain.Booking) (*UseCase, *fakeBookingRepo, *fakeAudit) {
	bookings := &fakeBookingRepo{existing: existing}
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Sala Principal", Capacity: 8, Status: domain.RoomAvailable},
		2: {ID: 2, Name: "Sala Pequena", Capacity: 4, Status: domain.RoomUnderMaintenance},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		10: {ID: 10, Name: "Ana", Status: domain.UserActive, Role: domain.RoleMember},
		11: {ID: 11, Name: "Bruno", Status: domain.UserActive, Role: domain.RoleMember},
		12: {ID: 12, Name: "Carla", Status: domain.UserPending, Role: domain.RoleAdmin},
	}}
	audit := &fakeAudit{}
	clock := fixedClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	uc := NewUseCase(bookings, rooms, users, fakeTxManager{}, audit, clock, nopLogger{})
	return uc, bookings, audit
}

func validRequest() *Request {
	return &Request{
		UserID:         10,
		RoomID:         1,
		Date:           date(2026, 3, 15),
		StartTime:      "19:00",
		ParticipantIDs: []int64{10, 11},
		GuestCount:     2,
	}
}

func TestExecute_Success(t *testing.T) {
	uc, repo, audit := newFixture(nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "Sala Principal", resp.RoomName)
	assert.Equal(t, types.TimeString("23:30"), resp.EndTime)
	assert.Equal(t, 270, resp.DurationMinutes)
	assert.False(t, resp.CrossesMidnight)
	assert.Equal(t, string(domain.BookingConfirmed), resp.Status)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Sala Principal", repo.created.RoomName)
	assert.Contains(t, audit.actions, "booking.create")
}

func TestExecute_CorujaoSlot(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.StartTime = "23:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("07:00"), resp.EndTime)
	assert.Equal(t, 480, resp.DurationMinutes)
	assert.True(t, resp.CrossesMidnight)
}

func TestExecute_NonCanonicalSlotRejected(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.StartTime = "15:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.Date = date(2026, 3, 9)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_IneligibleCreator(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.UserID = 12
	req.ParticipantIDs = []int64{12}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserNotEligible)
}

func TestExecute_AdminRoleDoesNotOverrideStanding(t *testing.T) {
	// User 12 is an administrator with pending membership.
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.UserID = 12
	req.ParticipantIDs = []int64{12}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserNotEligible)
}

func TestExecute_IneligibleParticipant(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.ParticipantIDs = []int64{10, 12}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrParticipantNotEligible)
}

func TestExecute_UnknownParticipant(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.ParticipantIDs = []int64{10, 99}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrParticipantNotEligible)
}

func TestExecute_CreatorMustParticipate(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.ParticipantIDs = []int64{11}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RoomNotBookable(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.RoomID = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.RoomID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_SlotTaken(t *testing.T) {
	existing := []*domain.Booking{
		{ID: 50, RoomID: 1, Date: date(2026, 3, 15), StartTime: "19:00", Status: domain.BookingConfirmed},
	}
	uc, _, _ := newFixture(existing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_NoiteBlocksCorujao(t *testing.T) {
	// The evening session runs until 23:30, past the corujão's 23:00 start.
	existing := []*domain.Booking{
		{ID: 50, RoomID: 1, Date: date(2026, 3, 15), StartTime: "19:00", Status: domain.BookingConfirmed},
	}
	uc, _, _ := newFixture(existing)

	req := validRequest()
	req.StartTime = "23:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CorujaoTailDoesNotBlockNextDayAfternoon(t *testing.T) {
	// Yesterday's corujão ends at 07:00; the 14:00 session is free.
	existing := []*domain.Booking{
		{ID: 50, RoomID: 1, Date: date(2026, 3, 14), StartTime: "23:00", Status: domain.BookingConfirmed},
	}
	uc, _, _ := newFixture(existing)

	req := validRequest()
	req.StartTime = "14:00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	existing := []*domain.Booking{
		{ID: 50, RoomID: 1, Date: date(2026, 3, 15), StartTime: "19:00", Status: domain.BookingCancelled},
	}
	uc, _, _ := newFixture(existing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_OtherRoomDoesNotConflict(t *testing.T) {
	existing := []*domain.Booking{
		{ID: 50, RoomID: 3, Date: date(2026, 3, 15), StartTime: "19:00", Status: domain.BookingConfirmed},
	}
	uc, _, _ := newFixture(existing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_GuestCountCap(t *testing.T) {
	uc, _, _ := newFixture(nil)

	req := validRequest()
	req.GuestCount = domain.MaxGuestCount + 1

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
