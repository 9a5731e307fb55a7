package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "stylebook/database/repository/schedule"
	"stylebook/models"
	"stylebook/services/availability"

	"go.uber.org/zap"
)

// GetAvailableTimes computes the time picker options for a stylist's portfolio on date.
func (s *DefaultBookingService) GetAvailableTimes(ctx context.Context, stylistID, portfolioID, date string) (*models.AvailableTimesResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	_, portfolio, err := s.loadPortfolio(ctx, stylistID, portfolioID)
	if err != nil {
		return nil, err
	}

	times, err := s.computeTimes(ctx, stylistID, day, portfolio.Duration, "")
	if err != nil {
		return nil, err
	}
	return &models.AvailableTimesResponse{
		StylistID:   stylistID,
		PortfolioID: portfolio.ID,
		Date:        date,
		Duration:    portfolio.Duration,
		Times:       times,
	}, nil
}

// computeTimes loads the stylist's schedule and that day's appointments and runs the calculator.
// The appointment with id excludeID, if any, does not block its own slot.
func (s *DefaultBookingService) computeTimes(ctx context.Context, stylistID string, day time.Time, duration, excludeID string) ([]string, error) {
	var days []models.DaySchedule
	schedule, err := s.Schedules.GetByStylistID(ctx, stylistID)
	switch {
	case errors.Is(err, scheduleRepo.ErrNotFound):
		s.logger().Debug("stylist has no schedule", zap.String("stylistID", stylistID))
	case err != nil:
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	default:
		days = schedule.Days
	}

	date := day.Format(availability.DateLayout)
	appts, err := s.Appointments.ListByStylistAndDate(ctx, stylistID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	existing := make([]models.ExistingAppointment, 0, len(appts))
	for _, a := range appts {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		existing = append(existing, a.Existing())
	}

	return availability.AvailableTimes(day, days, existing, duration, s.Options), nil
}

func (s *DefaultBookingService) loadPortfolio(ctx context.Context, stylistID, portfolioID string) (*models.Stylist, models.Portfolio, error) {
	stylist, err := s.loadStylist(ctx, stylistID)
	if err != nil {
		return nil, models.Portfolio{}, err
	}
	portfolio, ok := stylist.Portfolio(portfolioID)
	if !ok {
		return nil, models.Portfolio{}, ErrPortfolioNotFound
	}
	return stylist, portfolio, nil
}

// checkBookable verifies that clock is offered on day and is not already in the past.
func (s *DefaultBookingService) checkBookable(times []string, day time.Time, clock string) error {
	if !containsTime(times, clock) {
		return ErrSlotUnavailable
	}
	now := s.now()
	today := now.Format(availability.DateLayout)
	date := day.Format(availability.DateLayout)
	if date < today {
		return ErrInvalidDate
	}
	if date == today {
		start, _ := availability.ParseClock(clock)
		if start <= now.Hour()*60+now.Minute() {
			return ErrSlotUnavailable
		}
	}
	return nil
}

func parseDate(date string) (time.Time, error) {
	day, err := time.Parse(availability.DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

// containsTime compares wall-clock values so "2:30 PM" and "14:30" are the same slot.
func containsTime(times []string, clock string) bool {
	want, ok := availability.ParseClock(clock)
	if !ok {
		return false
	}
	for _, t := range times {
		if got, ok := availability.ParseClock(t); ok && got == want {
			return true
		}
	}
	return false
}
