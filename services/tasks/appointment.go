package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stylebook/models"
	"stylebook/services/availability"

	"github.com/hibiken/asynq"
)

const (
	TypeAppointmentExpire   = "appointment:expire"
	TypeAppointmentComplete = "appointment:complete"
)

// Scheduler queues the delayed status transitions of an appointment.
type Scheduler interface {
	ScheduleExpiry(ctx context.Context, appt models.Appointment) error
	ScheduleCompletion(ctx context.Context, appt models.Appointment) error
}

// NewExpireTask cancels a still-pending appointment once its start time passes.
func NewExpireTask(appt models.Appointment, loc *time.Location) (*asynq.Task, []asynq.Option, error) {
	start, err := StartTime(appt, loc)
	if err != nil {
		return nil, nil, err
	}
	return newTransitionTask(TypeAppointmentExpire, models.AppointmentTaskPayload{
		AppointmentID:   appt.ID,
		AppointmentDate: appt.AppointmentDate,
		AppointmentTime: appt.AppointmentTime,
		FromStatus:      models.StatusPending,
		ToStatus:        models.StatusCancelled,
	}, start)
}

// NewCompleteTask completes a confirmed appointment once it has ended.
func NewCompleteTask(appt models.Appointment, loc *time.Location) (*asynq.Task, []asynq.Option, error) {
	start, err := StartTime(appt, loc)
	if err != nil {
		return nil, nil, err
	}
	end := start.Add(time.Duration(availability.ParseDurationHours(appt.Duration)) * time.Hour)
	return newTransitionTask(TypeAppointmentComplete, models.AppointmentTaskPayload{
		AppointmentID:   appt.ID,
		AppointmentDate: appt.AppointmentDate,
		AppointmentTime: appt.AppointmentTime,
		FromStatus:      models.StatusConfirmed,
		ToStatus:        models.StatusCompleted,
	}, end)
}

func newTransitionTask(taskType string, payload models.AppointmentTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(taskType, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(taskType + ":" + payload.AppointmentID + ":" + fireAt.UTC().Format(time.RFC3339)),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// StartTime resolves the appointment's date and wall-clock start in loc.
func StartTime(appt models.Appointment, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(availability.DateLayout, appt.AppointmentDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date %q: %w", appt.AppointmentDate, err)
	}
	minutes, ok := availability.ParseClock(appt.AppointmentTime)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid appointment time %q", appt.AppointmentTime)
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// AsynqScheduler enqueues transitions on the Redis-backed asynq queue.
type AsynqScheduler struct {
	Client   *asynq.Client
	Location *time.Location
}

func (s *AsynqScheduler) ScheduleExpiry(ctx context.Context, appt models.Appointment) error {
	task, opts, err := NewExpireTask(appt, s.location())
	if err != nil {
		return err
	}
	return s.enqueue(ctx, task, opts)
}

func (s *AsynqScheduler) ScheduleCompletion(ctx context.Context, appt models.Appointment) error {
	task, opts, err := NewCompleteTask(appt, s.location())
	if err != nil {
		return err
	}
	return s.enqueue(ctx, task, opts)
}

func (s *AsynqScheduler) enqueue(ctx context.Context, task *asynq.Task, opts []asynq.Option) error {
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}
	return nil
}

func (s *AsynqScheduler) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}
