package availability

import (
	"time"

	"stylebook/models"
)

// DateLayout is the calendar date format shared with stored appointments.
const DateLayout = "2006-01-02"

// Options tune the calculator.
type Options struct {
	// MinutePrecision keeps the minutes of schedule windows instead of truncating to the hour.
	MinutePrecision bool
}

// GenerateSlots walks every merged range in half-hour steps and returns the labels of
// start times whose full duration fits the range without hitting a blocking appointment.
func GenerateSlots(ranges []Range, appointments []models.ExistingAppointment, date string, durationHours int) []string {
	if durationHours <= 0 {
		durationHours = 1
	}
	duration := durationHours * 60

	times := []string{}
	for _, r := range ranges {
		for cursor := r.Start; cursor <= r.End-duration; cursor += SlotStep {
			if HasConflict(date, cursor, duration, appointments) {
				continue
			}
			times = append(times, FormatClock(cursor))
		}
	}
	return times
}

// AvailableTimes lists the bookable start times on date for a service of the given duration.
// An unavailable weekday, an empty schedule or an unreadable duration never produce an error:
// the result is simply empty, or computed for one hour.
func AvailableTimes(date time.Time, schedule []models.DaySchedule, appointments []models.ExistingAppointment, duration string, opts Options) []string {
	day, ok := DayFor(date, schedule)
	if !ok || !day.Available {
		return []string{}
	}
	ranges := MergeRanges(day.TimeSlots, opts.MinutePrecision)
	return GenerateSlots(ranges, appointments, date.Format(DateLayout), ParseDurationHours(duration))
}
