package restaurantRepo

import (
	"context"
	"fmt"
	"time"

	"mesafy/database"
	"mesafy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRestaurantRepo implements RestaurantRepository using MongoDB.
type MongoRestaurantRepo struct {
	restaurantColl *mongo.Collection
	tableColl      *mongo.Collection
}

// NewMongoRestaurantRepo constructs a new instance of MongoRestaurantRepo.
func NewMongoRestaurantRepo() RestaurantRepository {
	db := database.DB()
	return &MongoRestaurantRepo{
		restaurantColl: db.Collection("restaurants"),
		tableColl:      db.Collection("tables"),
	}
}

// GetByID retrieves a restaurant document by ID.
func (repo *MongoRestaurantRepo) GetByID(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var restaurant models.Restaurant
	filter := bson.M{"id": restaurantID}
	if err := repo.restaurantColl.FindOne(ctx, filter).Decode(&restaurant); err != nil {
		return nil, fmt.Errorf("error fetching restaurant with id %s: %w", restaurantID, err)
	}
	return &restaurant, nil
}

// ListTables retrieves all tables belonging to a restaurant.
func (repo *MongoRestaurantRepo) ListTables(ctx context.Context, restaurantID string) ([]models.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.tableColl.Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		return nil, fmt.Errorf("error fetching tables: %w", err)
	}
	defer cursor.Close(ctx)

	var tables []models.Table
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("error decoding tables: %w", err)
	}
	return tables, nil
}

// CreateTable inserts a new table document.
func (repo *MongoRestaurantRepo) CreateTable(ctx context.Context, table *models.Table) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.tableColl.InsertOne(ctx, table); err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}
	return nil
}

// UpdateTable replaces an existing table document.
func (repo *MongoRestaurantRepo) UpdateTable(ctx context.Context, table *models.Table) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": table.ID, "restaurantId": table.RestaurantID}
	res, err := repo.tableColl.ReplaceOne(ctx, filter, table)
	if err != nil {
		return fmt.Errorf("error updating table %s: %w", table.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("table %s not found", table.ID)
	}
	return nil
}

// DeleteTable removes a table document.
func (repo *MongoRestaurantRepo) DeleteTable(ctx context.Context, restaurantID, tableID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": tableID, "restaurantId": restaurantID}
	if _, err := repo.tableColl.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("error deleting table %s: %w", tableID, err)
	}
	return nil
}
