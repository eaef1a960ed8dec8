package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the reservations collection.
func (repo *MongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on reservation ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: occupying reservations per restaurant/date
		{
			Keys:    bson.D{{Key: "restaurantId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("restaurant_date_status_idx"),
		},
		// Supports the transactional conflict re-check's range query
		{
			Keys: bson.D{
				{Key: "restaurantId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "startMinutes", Value: 1},
				{Key: "endMinutes", Value: 1},
			},
			Options: options.Index().SetName("restaurant_date_interval_idx"),
		},
	}

	if _, err := repo.reservationColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
