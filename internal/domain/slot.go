package domain

import "github.com/dungeon-app/booking-service/pkg/types"

// SlotPolicy describes one canonical booking slot. The association runs
// a fixed daily schedule: two regular sessions and the overnight
// "corujão" session that crosses midnight into the following day.
type SlotPolicy struct {
	ID              string
	StartTime       types.TimeString
	DurationMinutes int
	CrossesMidnight bool
}

// SlotPolicies is the single source of truth for slot configuration.
// Every component that reasons about slots reads this table; no code
// compares against slot start literals directly.
var SlotPolicies = []SlotPolicy{
	{ID: "tarde", StartTime: "14:00", DurationMinutes: 270},
	{ID: "noite", StartTime: "19:00", DurationMinutes: 270},
	{ID: "corujao", StartTime: "23:00", DurationMinutes: 480, CrossesMidnight: true},
}

// RegularSlotDurationMinutes is the duration applied to any valid start
// time that is not a midnight-crossing slot (4h30).
const RegularSlotDurationMinutes = 270

// FindSlotPolicy looks up the policy whose start time equals start.
// Returns nil when start is not a canonical slot.
func FindSlotPolicy(start types.TimeString) *SlotPolicy {
	for i := range SlotPolicies {
		if SlotPolicies[i].StartTime == start {
			return &SlotPolicies[i]
		}
	}
	return nil
}

// IsCanonicalSlot reports whether start is one of the configured slots.
func IsCanonicalSlot(start types.TimeString) bool {
	return FindSlotPolicy(start) != nil
}

// CrossesMidnight reports whether start is a midnight-crossing slot.
func CrossesMidnight(start types.TimeString) bool {
	p := FindSlotPolicy(start)
	return p != nil && p.CrossesMidnight
}
