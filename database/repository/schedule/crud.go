// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoScheduleRepo) GetByStylistID(ctx context.Context, stylistID string) (*models.StylistSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.StylistSchedule
	err := r.coll.FindOne(ctx, bson.M{"stylistId": stylistID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for stylist %s: %w", stylistID, err)
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) Upsert(ctx context.Context, schedule *models.StylistSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now().UTC()
	filter := bson.M{"stylistId": schedule.StylistID}
	update := bson.M{"$set": bson.M{
		"days":      schedule.Days,
		"updatedAt": schedule.UpdatedAt,
	}}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to save schedule for stylist %s: %w", schedule.StylistID, err)
	}
	return nil
}
