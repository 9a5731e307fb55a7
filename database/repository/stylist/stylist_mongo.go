package stylistRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"stylebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var stylist models.Stylist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&stylist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stylist with id %s: %w", id, err)
	}
	return &stylist, nil
}

// ListActive loads active stylists. Free-text matching and ordering happen in the search service.
func (r *MongoStylistRepo) ListActive(ctx context.Context, criteria StylistSearchCriteria) ([]models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if criteria.Service != "" {
		filter["services"] = bson.M{"$regex": regexp.QuoteMeta(criteria.Service), "$options": "i"}
	}
	if criteria.Location != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(criteria.Location), "$options": "i"}
	}
	if criteria.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": criteria.MinRating}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list stylists: %w", err)
	}
	defer cursor.Close(ctx)

	stylists := []models.Stylist{}
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, fmt.Errorf("failed to decode stylists: %w", err)
	}
	return stylists, nil
}
