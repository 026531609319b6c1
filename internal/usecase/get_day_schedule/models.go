package get_day_schedule

import (
	"time"

	"github.com/dungeon-app/booking-service/internal/schedule"
)

// Request asks for one day's booking grid.
type Request struct {
	Date time.Time // civil date, association-local
}

// Response is the assembled day view.
type Response struct {
	Schedule schedule.ScheduleByRoom
}
