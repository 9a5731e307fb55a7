package availability

import (
	"strings"
	"time"

	"stylebook/models"
)

// DayFor returns the schedule entry whose weekday name matches date, preferring an
// available entry when the schedule lists the same day more than once.
func DayFor(date time.Time, schedule []models.DaySchedule) (models.DaySchedule, bool) {
	weekday := date.Weekday().String()
	var (
		match models.DaySchedule
		found bool
	)
	for _, day := range schedule {
		if !strings.EqualFold(strings.TrimSpace(day.Day), weekday) {
			continue
		}
		if day.Available {
			return day, true
		}
		if !found {
			match, found = day, true
		}
	}
	return match, found
}

// DayAvailable reports whether date falls on a weekday the stylist takes bookings.
func DayAvailable(date time.Time, schedule []models.DaySchedule) bool {
	day, ok := DayFor(date, schedule)
	return ok && day.Available
}
