// Package schedule implements the association's booking slot rules:
// slot durations, the day window including the overnight corujão tail,
// the per-room occupancy grid, booking eligibility and the upcoming/past
// classification of a member's history.
//
// All functions are pure and synchronous. They operate on records
// already fetched by the storage layer and must be called per request
// with fresh inputs; nothing here caches across calls.
//
// Time frame precondition: stored civil dates and start times are in
// the association's local timezone, and every `now` passed in must be
// computed in that same zone (cmd wiring loads it from config).
package schedule

import (
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/pkg/types"
)

const minutesPerDay = 24 * 60

// SlotComputation is the canonical duration and end time for a slot
// start. The zero value is the sentinel for unparseable input; callers
// must treat DurationMinutes == 0 as "cannot schedule".
type SlotComputation struct {
	DurationMinutes int
	EndTime         types.TimeString
	CrossesMidnight bool
}

// IsZero reports whether the computation is the invalid-input sentinel.
func (c SlotComputation) IsZero() bool {
	return c.DurationMinutes == 0
}

// Hours returns the duration in hours (4.5 for regular slots, 8 for corujão).
func (c SlotComputation) Hours() float64 {
	return float64(c.DurationMinutes) / 60
}

// ComputeSlot returns the canonical duration and wall-clock end time for
// start. Midnight-crossing slots take their policy duration; any other
// parseable start gets the regular session duration. Invalid input
// yields the zero sentinel rather than an error.
func ComputeSlot(start types.TimeString) SlotComputation {
	if start.Validate() != nil {
		return SlotComputation{}
	}

	duration := domain.RegularSlotDurationMinutes
	crosses := false
	if policy := domain.FindSlotPolicy(start); policy != nil {
		duration = policy.DurationMinutes
		crosses = policy.CrossesMidnight
	}

	end, err := start.AddMinutes(duration)
	if err != nil {
		return SlotComputation{}
	}

	return SlotComputation{
		DurationMinutes: duration,
		EndTime:         end,
		CrossesMidnight: crosses,
	}
}

// ResolveDayBookings selects the bookings belonging to selected's day
// view: those dated selected, plus those dated the previous day whose
// slot crosses midnight (last night's corujão still occupies the early
// hours of selected). Input order is preserved; callers needing
// chronological order sort by (date, start) themselves.
func ResolveDayBookings(selected time.Time, all []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(all))
	previous := selected.AddDate(0, 0, -1)

	for _, b := range all {
		switch {
		case sameCivilDay(b.Date, selected):
			result = append(result, b)
		case sameCivilDay(b.Date, previous) && domain.CrossesMidnight(b.StartTime):
			result = append(result, b)
		}
	}

	return result
}

// Entry is one booking placed on the grid, with its half-open
// [Start, End) interval resolved through ComputeSlot.
type Entry struct {
	Booking   *domain.Booking
	Start     types.TimeString
	End       types.TimeString
	// FromPreviousDay marks last night's corujão tail shown on today's grid.
	FromPreviousDay bool
}

// RoomSchedule is one room's view for the selected day.
type RoomSchedule struct {
	Room    *domain.Room
	Entries []Entry
	// FreeSlots are the canonical slots not occupied by any active entry.
	FreeSlots []domain.SlotPolicy
	// Unschedulable holds bookings whose start time failed ComputeSlot.
	// They are kept out of the grid but surfaced for upstream correction.
	Unschedulable []*domain.Booking
}

// ScheduleByRoom is the full day view, one element per bookable room,
// in the room directory's order. The structure is presentation-agnostic:
// the wide grid and the per-room accordion render the same value.
type ScheduleByRoom struct {
	Date  time.Time
	Rooms []RoomSchedule
}

// BuildSchedule assembles the day view from the room directory and the
// day's bookings (as returned by ResolveDayBookings for Date). Rooms
// that are not bookable are excluded. Overlapping bookings are all
// represented; resolving them is the write path's concern, not a
// rendering concern. Cancelled bookings do not occupy slots.
func BuildSchedule(date time.Time, rooms []*domain.Room, dayBookings []*domain.Booking) ScheduleByRoom {
	out := ScheduleByRoom{Date: date}

	for _, room := range rooms {
		if !room.IsBookable() {
			continue
		}
		out.Rooms = append(out.Rooms, buildRoomSchedule(date, room, dayBookings))
	}

	return out
}

func buildRoomSchedule(date time.Time, room *domain.Room, dayBookings []*domain.Booking) RoomSchedule {
	rs := RoomSchedule{Room: room}

	// Active entries with their occupied intervals, in minutes relative
	// to the selected day's midnight. Previous-day corujão tails start
	// before zero.
	type interval struct{ start, end int }
	var occupied []interval

	for _, b := range dayBookings {
		if b.RoomID != room.ID {
			continue
		}

		comp := ComputeSlot(b.StartTime)
		if comp.IsZero() {
			rs.Unschedulable = append(rs.Unschedulable, b)
			continue
		}

		fromPrevious := !sameCivilDay(b.Date, date)
		rs.Entries = append(rs.Entries, Entry{
			Booking:         b,
			Start:           b.StartTime,
			End:             comp.EndTime,
			FromPreviousDay: fromPrevious,
		})

		if !b.IsActive() {
			continue
		}

		startMin, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		if fromPrevious {
			startMin -= minutesPerDay
		}
		occupied = append(occupied, interval{start: startMin, end: startMin + comp.DurationMinutes})
	}

	// A canonical slot is free when its half-open interval overlaps no
	// occupied interval. Strict inequalities: bookings that merely touch
	// at a boundary do not conflict.
	for _, policy := range domain.SlotPolicies {
		slotStart, err := policy.StartTime.Minutes()
		if err != nil {
			continue
		}
		slotEnd := slotStart + policy.DurationMinutes

		free := true
		for _, iv := range occupied {
			if iv.start < slotEnd && iv.end > slotStart {
				free = false
				break
			}
		}
		if free {
			rs.FreeSlots = append(rs.FreeSlots, policy)
		}
	}

	return rs
}

// CanInitiateBooking is the single eligibility gate for opening the
// booking-creation flow. Only membership standing matters; role does
// not (administrators with pending membership cannot book).
func CanInitiateBooking(u *domain.User) bool {
	return u != nil && u.Status == domain.UserActive
}

// BookingPhase classifies a booking relative to now.
type BookingPhase string

const (
	PhaseUpcoming BookingPhase = "upcoming"
	PhasePast     BookingPhase = "past"
)

// Classify reports whether the booking is upcoming or past. The booking
// is upcoming iff its start instant is strictly after now; a booking
// starting exactly now is already past. The start instant is assembled
// in now's location, per the package time frame precondition.
func Classify(b *domain.Booking, now time.Time) BookingPhase {
	startMin, err := b.StartTime.Minutes()
	if err != nil {
		// Unparseable start times cannot be upcoming.
		return PhasePast
	}

	y, m, d := b.Date.Date()
	start := time.Date(y, m, d, startMin/60, startMin%60, 0, 0, now.Location())

	if start.After(now) {
		return PhaseUpcoming
	}
	return PhasePast
}

func sameCivilDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
