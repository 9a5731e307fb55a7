package stylistRepo

import (
	"context"
	"errors"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no stylist matches.
var ErrNotFound = errors.New("stylist not found")

// StylistSearchCriteria narrows the set of stylists loaded for discovery.
type StylistSearchCriteria struct {
	Service   string
	Location  string
	MinRating float64
}

// StylistRepository defines methods for stylist data access.
type StylistRepository interface {
	// GetByID retrieves a stylist by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Stylist, error)
	// ListActive returns active stylists matching the coarse criteria.
	ListActive(ctx context.Context, criteria StylistSearchCriteria) ([]models.Stylist, error)
	EnsureIndexes(ctx context.Context) error
}

// MongoStylistRepo implements StylistRepository using MongoDB.
type MongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoStylistRepo creates a new instance of StylistRepository using MongoDB.
func NewMongoStylistRepo() StylistRepository {
	return &MongoStylistRepo{coll: database.Database().Collection("stylists")}
}
