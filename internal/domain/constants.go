package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGuestCount              = 20
	MaxNoticeTitleLength       = 200
	MaxNoticeBodyLength        = 5000
	MaxCancellationReasonLength = 500
)

// ActiveBookingStatuses lists the statuses that occupy a slot.
var ActiveBookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
}

// InactiveBookingStatuses lists the statuses excluded from occupancy.
var InactiveBookingStatuses = []BookingStatus{
	BookingCancelled,
}
