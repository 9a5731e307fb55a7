package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"stylebook/models"
	"stylebook/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type applierFunc func(ctx context.Context, payload models.AppointmentTaskPayload) error

func (f applierFunc) ApplyScheduledTransition(ctx context.Context, payload models.AppointmentTaskPayload) error {
	return f(ctx, payload)
}

func TestHandleTransitionTask_PassesPayload(t *testing.T) {
	var got models.AppointmentTaskPayload
	handler := handleTransitionTask(applierFunc(func(_ context.Context, p models.AppointmentTaskPayload) error {
		got = p
		return nil
	}), zap.NewNop())

	task, _, err := tasks.NewExpireTask(models.Appointment{
		ID: "a-1", AppointmentDate: "2026-01-05", AppointmentTime: "9:00 AM", Duration: "1 hour",
	}, time.UTC)
	require.NoError(t, err)

	require.NoError(t, handler.ProcessTask(context.Background(), task))
	assert.Equal(t, "a-1", got.AppointmentID)
	assert.Equal(t, models.StatusPending, got.FromStatus)
	assert.Equal(t, models.StatusCancelled, got.ToStatus)
}

func TestHandleTransitionTask_BadPayloadSkipsRetry(t *testing.T) {
	handler := handleTransitionTask(applierFunc(func(context.Context, models.AppointmentTaskPayload) error {
		t.Fatal("applier must not run")
		return nil
	}), zap.NewNop())

	err := handler.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeAppointmentExpire, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = handler.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeAppointmentExpire, []byte(`{}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleTransitionTask_ReturnsApplyError(t *testing.T) {
	boom := errors.New("mongo down")
	handler := handleTransitionTask(applierFunc(func(context.Context, models.AppointmentTaskPayload) error {
		return boom
	}), zap.NewNop())

	task, _, err := tasks.NewCompleteTask(models.Appointment{
		ID: "a-1", AppointmentDate: "2026-01-05", AppointmentTime: "9:00 AM", Duration: "2 hours",
	}, time.UTC)
	require.NoError(t, err)

	assert.ErrorIs(t, handler.ProcessTask(context.Background(), task), boom)
}
