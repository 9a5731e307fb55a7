package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stylebook/models"
	"stylebook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TransitionApplier applies a queued appointment status change.
type TransitionApplier interface {
	ApplyScheduledTransition(ctx context.Context, payload models.AppointmentTaskPayload) error
}

// AppointmentWorker processes appointment expiry and completion tasks.
type AppointmentWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewAppointmentWorker builds the asynq server for the appointment task queue.
func NewAppointmentWorker(redisOpts asynq.RedisClientOpt, applier TransitionApplier, logger *zap.Logger) *AppointmentWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	handler := handleTransitionTask(applier, logger)
	mux.HandleFunc(tasks.TypeAppointmentExpire, handler)
	mux.HandleFunc(tasks.TypeAppointmentComplete, handler)

	return &AppointmentWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *AppointmentWorker) Start() {
	go func() {
		w.logger.Info("starting appointment worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Error("appointment worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Fatal("appointment worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown stops fetching new tasks and waits for running ones.
func (w *AppointmentWorker) Shutdown() {
	w.srv.Shutdown()
}

func handleTransitionTask(applier TransitionApplier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AppointmentTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid appointment task payload", zap.String("type", task.Type()), zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.AppointmentID == "" {
			return fmt.Errorf("appointment task without appointment ID: %w", asynq.SkipRetry)
		}

		logger.Debug("running appointment task", zap.String("type", task.Type()), zap.String("appointmentID", p.AppointmentID))
		return applier.ApplyScheduledTransition(ctx, p)
	}
}
