package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"meetsync/database"
	"meetsync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByUser retrieves a user's bookings, ordered ascending by start time.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.find(bson.M{"userId": userID})
}

// List retrieves all bookings matching the filter.
func (r *MongoBookingRepo) List(filter ListFilter) ([]models.Booking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if !filter.RangeFrom.IsZero() && !filter.RangeTo.IsZero() {
		query["startTime"] = bson.M{"$gte": filter.RangeFrom, "$lte": filter.RangeTo}
	}
	return r.find(query)
}

// FindOverlapping retrieves bookings in the given statuses whose interval
// overlaps the candidate. The half-open test is expressed directly in the
// query: existing.start < candidate.end AND existing.end > candidate.start.
func (r *MongoBookingRepo) FindOverlapping(interval models.TimeInterval, statuses []string) ([]models.Booking, error) {
	return r.find(bson.M{
		"startTime": bson.M{"$lt": interval.End},
		"endTime":   bson.M{"$gt": interval.Start},
		"status":    bson.M{"$in": statuses},
	})
}

// Insert persists a new booking record.
func (r *MongoBookingRepo) Insert(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// UpdateStatus transitions a booking's status and bumps updatedAt.
func (r *MongoBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &booking, nil
}

// SetEmailSent records whether invitation delivery succeeded.
func (r *MongoBookingRepo) SetEmailSent(id string, sent bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"emailSent": sent, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to set emailSent for booking %s: %w", id, err)
	}
	return nil
}
