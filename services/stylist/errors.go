package stylist

import "errors"

var (
	ErrStylistNotFound   = errors.New("stylist not found")
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrForbidden         = errors.New("only the stylist can change this schedule")
)

// ScheduleError describes why a submitted weekly schedule was rejected.
type ScheduleError struct {
	Day    string
	Reason string
}

func (e *ScheduleError) Error() string {
	if e.Day == "" {
		return "invalid schedule: " + e.Reason
	}
	return "invalid schedule for " + e.Day + ": " + e.Reason
}
