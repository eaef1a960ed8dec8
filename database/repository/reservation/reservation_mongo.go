package reservationRepo

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

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	reservationColl *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() ReservationRepository {
	return &MongoReservationRepo{
		reservationColl: database.DB().Collection("reservations"),
	}
}

// ListOccupying returns the PENDING and CONFIRMED reservations of a
// restaurant on a date, ordered by start time.
func (repo *MongoReservationRepo) ListOccupying(ctx context.Context, restaurantID, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"restaurantId": restaurantID,
		"date":         date,
		"status":       bson.M{"$in": models.OccupyingStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startMinutes", Value: 1}})
	cursor, err := repo.reservationColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

// GetByID retrieves a reservation by its ID.
func (repo *MongoReservationRepo) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := repo.reservationColl.FindOne(ctx, bson.M{"id": reservationID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching reservation %s: %w", reservationID, err)
	}
	return &res, nil
}

// conflictFilter matches occupying reservations whose interval overlaps
// [startMinutes, endMinutes) on any of the given tables.
func conflictFilter(restaurantID, date string, tableIDs []string, startMinutes, endMinutes int) bson.M {
	return bson.M{
		"restaurantId": restaurantID,
		"date":         date,
		"status":       bson.M{"$in": models.OccupyingStatuses},
		"tableIds":     bson.M{"$in": tableIDs},
		"startMinutes": bson.M{"$lt": endMinutes},
		"endMinutes":   bson.M{"$gt": startMinutes},
	}
}

// CreateIfTablesFree inserts the reservation inside a multi-document
// transaction that first re-runs the conflict query. Two concurrent bookings
// for an overlapping interval on the same table therefore cannot both commit;
// the loser gets ErrTablesTaken.
func (repo *MongoReservationRepo) CreateIfTablesFree(ctx context.Context, res *models.Reservation) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := conflictFilter(res.RestaurantID, res.Date, res.TableIDs, res.StartMinutes, res.EndMinutes)
		count, err := repo.reservationColl.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		if count > 0 {
			return ErrTablesTaken
		}
		if _, err := repo.reservationColl.InsertOne(sc, res); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	})
}

// Reschedule moves an existing reservation under the same transactional
// conflict re-check, ignoring the reservation's own previous interval.
func (repo *MongoReservationRepo) Reschedule(ctx context.Context, res *models.Reservation) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := conflictFilter(res.RestaurantID, res.Date, res.TableIDs, res.StartMinutes, res.EndMinutes)
		filter["id"] = bson.M{"$ne": res.ID}
		count, err := repo.reservationColl.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		if count > 0 {
			return ErrTablesTaken
		}
		result, err := repo.reservationColl.ReplaceOne(sc, bson.M{"id": res.ID}, res)
		if err != nil {
			return fmt.Errorf("replace reservation failed: %w", err)
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// withTransaction runs fn inside a mongo session transaction.
func (repo *MongoReservationRepo) withTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	client := repo.reservationColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// UpdateStatus sets a reservation's status. Lifecycle legality is enforced by
// the booking service before calling.
func (repo *MongoReservationRepo) UpdateStatus(ctx context.Context, reservationID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": reservationID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := repo.reservationColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating reservation %s: %w", reservationID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPendingThrough returns PENDING reservations dated on or before date,
// across all restaurants. ISO dates compare lexicographically, so a string
// range query is a chronological one.
func (repo *MongoReservationRepo) ListPendingThrough(ctx context.Context, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$lte": date}, "status": models.ReservationStatusPending}
	cursor, err := repo.reservationColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching pending reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}
