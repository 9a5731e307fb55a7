package stylist

import (
	"fmt"
	"strings"
	"time"

	"stylebook/models"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ValidateSchedule checks a submitted weekly schedule and returns it with canonical day
// names. Overlapping windows are accepted; availability merges them.
func ValidateSchedule(days []models.DaySchedule) ([]models.DaySchedule, error) {
	seen := make(map[time.Weekday]bool, len(days))
	out := make([]models.DaySchedule, 0, len(days))

	for _, d := range days {
		wd, ok := weekdays[strings.ToLower(strings.TrimSpace(d.Day))]
		if !ok {
			return nil, &ScheduleError{Reason: fmt.Sprintf("unknown weekday %q", d.Day)}
		}
		name := wd.String()
		if seen[wd] {
			return nil, &ScheduleError{Day: name, Reason: "listed more than once"}
		}
		seen[wd] = true

		if d.Available && len(d.TimeSlots) == 0 {
			return nil, &ScheduleError{Day: name, Reason: "available days need at least one time slot"}
		}
		slots := make([]models.TimeRange, 0, len(d.TimeSlots))
		for _, slot := range d.TimeSlots {
			from, okFrom := parseHHMM(slot.From)
			to, okTo := parseHHMM(slot.To)
			if !okFrom || !okTo {
				return nil, &ScheduleError{Day: name, Reason: fmt.Sprintf("time slot %s-%s must use HH:MM", slot.From, slot.To)}
			}
			if from >= to {
				return nil, &ScheduleError{Day: name, Reason: fmt.Sprintf("time slot %s-%s ends before it starts", slot.From, slot.To)}
			}
			slots = append(slots, models.TimeRange{From: slot.From, To: slot.To})
		}
		out = append(out, models.DaySchedule{Day: name, Available: d.Available, TimeSlots: slots})
	}
	return out, nil
}

// parseHHMM accepts 24-hour "HH:MM" with 24:00 as the end of day.
func parseHHMM(s string) (int, bool) {
	if s == "24:00" {
		return 24 * 60, true
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
