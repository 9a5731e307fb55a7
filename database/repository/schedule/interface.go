// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a stylist has no stored schedule.
var ErrNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	GetByStylistID(ctx context.Context, stylistID string) (*models.StylistSchedule, error)
	Upsert(ctx context.Context, schedule *models.StylistSchedule) error
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.Database().Collection("schedules"),
	}
}
