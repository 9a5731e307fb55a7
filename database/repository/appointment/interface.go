// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no appointment matches.
	ErrNotFound = errors.New("appointment not found")
	// ErrStatusChanged is returned when a conditional status update finds another status.
	ErrStatusChanged = errors.New("appointment status changed concurrently")
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	ListByStylistAndDate(ctx context.Context, stylistID, date string) ([]models.Appointment, error)
	Reschedule(ctx context.Context, id, date, clock string) error
	// UpdateStatus moves id from one status to another and fails with ErrStatusChanged
	// when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id, from, to string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.Database().Collection("appointments"),
	}
}
