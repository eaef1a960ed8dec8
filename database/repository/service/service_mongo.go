package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"mesafy/database"
	"mesafy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	serviceColl *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{
		serviceColl: database.DB().Collection("services"),
	}
}

func (repo *MongoServiceRepo) list(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// createdAt ascending: the matcher's first-created-wins tie-break relies
	// on this order.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := repo.serviceColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// ListActive returns the restaurant's active services, createdAt ascending.
func (repo *MongoServiceRepo) ListActive(ctx context.Context, restaurantID string) ([]models.Service, error) {
	return repo.list(ctx, bson.M{"restaurantId": restaurantID, "isActive": true})
}

// List returns all of the restaurant's services, createdAt ascending.
func (repo *MongoServiceRepo) List(ctx context.Context, restaurantID string) ([]models.Service, error) {
	return repo.list(ctx, bson.M{"restaurantId": restaurantID})
}

// GetByID retrieves a service document by ID.
func (repo *MongoServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	if err := repo.serviceColl.FindOne(ctx, bson.M{"id": serviceID}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	return &svc, nil
}

// Create inserts a new service document.
func (repo *MongoServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.serviceColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

// SetActive flips the isActive flag of a service.
func (repo *MongoServiceRepo) SetActive(ctx context.Context, serviceID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": serviceID}
	update := bson.M{"$set": bson.M{"isActive": active}}
	res, err := repo.serviceColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating service %s: %w", serviceID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", serviceID)
	}
	return nil
}
