// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"stylebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.StylistID != "" {
		query["stylistId"] = filter.StylistID
	}
	if filter.CustomerID != "" {
		query["customerId"] = filter.CustomerID
	}
	if filter.Date != "" {
		query["appointmentDate"] = filter.Date
	}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// ListByStylistAndDate returns every appointment of the stylist on date, whatever its status.
func (r *mongoAppointmentRepo) ListByStylistAndDate(ctx context.Context, stylistID, date string) ([]models.Appointment, error) {
	return r.List(ctx, models.AppointmentFilter{StylistID: stylistID, Date: date})
}
