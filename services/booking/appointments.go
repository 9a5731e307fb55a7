package booking

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "stylebook/database/repository/appointment"
	"stylebook/models"
	"stylebook/services/availability"
	"stylebook/services/events"

	"go.uber.org/zap"
)

// BookAppointment creates a pending appointment at a time the stylist currently offers.
func (s *DefaultBookingService) BookAppointment(ctx context.Context, customerID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := s.logger()

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	stylist, portfolio, err := s.loadPortfolio(ctx, req.StylistID, req.PortfolioID)
	if err != nil {
		return nil, err
	}
	if !stylist.Active {
		return nil, ErrStylistInactive
	}

	times, err := s.computeTimes(ctx, stylist.ID, day, portfolio.Duration, "")
	if err != nil {
		return nil, err
	}
	if err := s.checkBookable(times, day, req.Time); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		StylistID:       stylist.ID,
		CustomerID:      customerID,
		PortfolioID:     portfolio.ID,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		Duration:        portfolio.Duration,
		Status:          models.StatusPending,
		Notes:           req.Notes,
		Price:           portfolio.Price,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}
	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("stylistID", appt.StylistID),
		zap.String("date", appt.AppointmentDate),
		zap.String("time", appt.AppointmentTime))

	s.scheduleFor(ctx, *appt)
	s.publish(ctx, events.TypeAppointmentCreated, *appt)
	return appt, nil
}

// ViewAppointment returns an appointment with the times it could be moved to on date.
// On the appointment's own date its current time stays selectable.
func (s *DefaultBookingService) ViewAppointment(ctx context.Context, actor Actor, appointmentID, date string) (*models.AppointmentView, error) {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !canView(actor, *appt) {
		return nil, ErrForbidden
	}
	if date == "" {
		date = appt.AppointmentDate
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	times, err := s.computeTimes(ctx, appt.StylistID, day, appt.Duration, "")
	if err != nil {
		return nil, err
	}
	if date == appt.AppointmentDate {
		times = WithSelectedTime(times, appt.AppointmentTime)
	}
	return &models.AppointmentView{
		Appointment:    *appt,
		Date:           date,
		AvailableTimes: times,
	}, nil
}

// Reschedule moves an open appointment. The appointment does not conflict with itself.
func (s *DefaultBookingService) Reschedule(ctx context.Context, actor Actor, appointmentID string, req models.RescheduleRequest) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !canView(actor, *appt) {
		return nil, ErrForbidden
	}
	if !CanTransition(appt.Status, models.StatusCancelled) {
		return nil, ErrInvalidTransition
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	times, err := s.computeTimes(ctx, appt.StylistID, day, appt.Duration, appt.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkBookable(times, day, req.Time); err != nil {
		return nil, err
	}

	if err := s.Appointments.Reschedule(ctx, appt.ID, req.Date, req.Time); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	appt.AppointmentDate = req.Date
	appt.AppointmentTime = req.Time

	s.scheduleFor(ctx, *appt)
	s.publish(ctx, events.TypeAppointmentRescheduled, *appt)
	return appt, nil
}

// UpdateStatus applies a user-initiated status change.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, actor Actor, appointmentID, status string) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !canSetStatus(actor, *appt, status) {
		return nil, ErrForbidden
	}
	if !CanTransition(appt.Status, status) {
		return nil, ErrInvalidTransition
	}
	if availability.IsBlocking(status) && !availability.IsBlocking(appt.Status) {
		if err := s.checkNoClash(ctx, *appt); err != nil {
			return nil, err
		}
	}

	if err := s.Appointments.UpdateStatus(ctx, appt.ID, appt.Status, status); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrStatusChanged):
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	s.logger().Info("appointment status changed",
		zap.String("appointmentID", appt.ID),
		zap.String("from", appt.Status),
		zap.String("to", status),
		zap.String("actorRole", actor.Role))
	appt.Status = status

	s.scheduleFor(ctx, *appt)
	s.publish(ctx, events.TypeAppointmentStatusChanged, *appt)
	return appt, nil
}

// ListAppointments returns the caller's own appointments, newest first.
func (s *DefaultBookingService) ListAppointments(ctx context.Context, actor Actor, statuses []string) ([]models.Appointment, error) {
	filter := models.AppointmentFilter{Statuses: statuses}
	switch actor.Role {
	case RoleStylist:
		filter.StylistID = actor.ID
	case RoleCustomer:
		filter.CustomerID = actor.ID
	case RoleAdmin:
	default:
		return nil, ErrForbidden
	}
	appts, err := s.Appointments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// ApplyScheduledTransition runs a delayed status change queued by the task scheduler.
// The change is dropped when the appointment was moved or left the expected status since queueing.
func (s *DefaultBookingService) ApplyScheduledTransition(ctx context.Context, payload models.AppointmentTaskPayload) error {
	logger := s.logger().With(zap.String("appointmentID", payload.AppointmentID), zap.String("to", payload.ToStatus))

	appt, err := s.Appointments.GetByID(ctx, payload.AppointmentID)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		logger.Debug("scheduled transition skipped: appointment gone")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt.Status != payload.FromStatus ||
		appt.AppointmentDate != payload.AppointmentDate ||
		appt.AppointmentTime != payload.AppointmentTime {
		logger.Debug("scheduled transition skipped: appointment changed", zap.String("status", appt.Status))
		return nil
	}

	err = s.Appointments.UpdateStatus(ctx, appt.ID, payload.FromStatus, payload.ToStatus)
	switch {
	case errors.Is(err, appointmentRepo.ErrNotFound), errors.Is(err, appointmentRepo.ErrStatusChanged):
		logger.Debug("scheduled transition skipped", zap.Error(err))
		return nil
	case err != nil:
		return fmt.Errorf("failed to apply scheduled transition: %w", err)
	}
	logger.Info("scheduled transition applied", zap.String("from", payload.FromStatus))

	appt.Status = payload.ToStatus
	s.publish(ctx, events.TypeAppointmentStatusChanged, *appt)
	return nil
}

// checkNoClash fails when another blocking appointment already overlaps appt.
func (s *DefaultBookingService) checkNoClash(ctx context.Context, appt models.Appointment) error {
	start, ok := availability.ParseClock(appt.AppointmentTime)
	if !ok {
		return nil
	}
	appts, err := s.Appointments.ListByStylistAndDate(ctx, appt.StylistID, appt.AppointmentDate)
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}
	others := make([]models.ExistingAppointment, 0, len(appts))
	for _, a := range appts {
		if a.ID != appt.ID {
			others = append(others, a.Existing())
		}
	}
	if availability.HasConflict(appt.AppointmentDate, start, availability.ParseDurationHours(appt.Duration)*60, others) {
		return ErrSlotUnavailable
	}
	return nil
}

func (s *DefaultBookingService) getAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return appt, nil
}

// scheduleFor queues the delayed transition matching the appointment's current status.
func (s *DefaultBookingService) scheduleFor(ctx context.Context, appt models.Appointment) {
	var err error
	switch appt.Status {
	case models.StatusPending:
		err = s.Tasks.ScheduleExpiry(ctx, appt)
	case models.StatusConfirmed:
		err = s.Tasks.ScheduleCompletion(ctx, appt)
	default:
		return
	}
	if err != nil {
		s.logger().Error("failed to schedule appointment task",
			zap.String("appointmentID", appt.ID), zap.String("status", appt.Status), zap.Error(err))
	}
}

func (s *DefaultBookingService) publish(ctx context.Context, eventType string, appt models.Appointment) {
	event := models.AppointmentEvent{
		Type:          eventType,
		AppointmentID: appt.ID,
		StylistID:     appt.StylistID,
		CustomerID:    appt.CustomerID,
		Status:        appt.Status,
		Date:          appt.AppointmentDate,
		Time:          appt.AppointmentTime,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.Events.Publish(ctx, event); err != nil {
		s.logger().Warn("failed to publish appointment event",
			zap.String("type", eventType), zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
