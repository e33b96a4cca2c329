package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetsync/database"
	"meetsync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSlotLocked signals that another booking attempt currently holds a lock
// over part of the requested interval.
var ErrSlotLocked = errors.New("slot is locked by a concurrent booking attempt")

// slotLockTTL bounds how long a crashed workflow can keep a slot claimed
// before the TTL monitor reaps its lock documents.
const slotLockTTL = 2 * time.Minute

// SlotLock is an advisory lock document. Its _id encodes one 30-minute
// granule of the admin calendar, so the collection's unique _id index is a
// uniqueness constraint over overlapping-interval space: any two overlapping
// intervals claim at least one common granule, and only one insert can win.
type SlotLock struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
}

// SlotLockRepository serializes booking creation per calendar interval.
type SlotLockRepository interface {
	// Acquire claims every granule covered by the interval. It returns a
	// release function on success, or ErrSlotLocked when any granule is
	// already held.
	Acquire(ctx context.Context, interval models.TimeInterval) (release func(), err error)
}

// MongoSlotLockRepo implements SlotLockRepository using MongoDB.
type MongoSlotLockRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotLockRepo creates a new instance of SlotLockRepository using MongoDB.
func NewMongoSlotLockRepo() SlotLockRepository {
	coll := database.DB().Collection("slot_locks")
	repo := &MongoSlotLockRepo{coll: coll}

	if err := repo.ensureTTLIndex(); err != nil {
		fmt.Printf("failed to create slot lock TTL index: %v\n", err)
	}
	return repo
}

func (r *MongoSlotLockRepo) ensureTTLIndex() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create TTL index: %w", err)
	}
	return nil
}

// granuleKeys maps an interval to the lock keys of every 30-minute granule it
// touches. The start is floored to the granularity so that any two
// overlapping intervals share at least one key.
func granuleKeys(interval models.TimeInterval) []string {
	start := interval.Start.UTC().Truncate(30 * time.Minute)
	var keys []string
	for g := start; g.Before(interval.End.UTC()); g = g.Add(30 * time.Minute) {
		keys = append(keys, "slot:"+g.Format(time.RFC3339))
	}
	return keys
}

// Acquire claims the interval's granules one by one. On a duplicate key the
// granules already claimed are released before reporting ErrSlotLocked.
func (r *MongoSlotLockRepo) Acquire(ctx context.Context, interval models.TimeInterval) (func(), error) {
	now := time.Now()
	keys := granuleKeys(interval)

	var claimed []string
	releaseClaimed := func() {
		if len(claimed) == 0 {
			return
		}
		cleanupCtx, cancel := newContext(5 * time.Second)
		defer cancel()
		_, _ = r.coll.DeleteMany(cleanupCtx, bson.M{"_id": bson.M{"$in": claimed}})
	}

	for _, key := range keys {
		lock := SlotLock{ID: key, ExpiresAt: now.Add(slotLockTTL), CreatedAt: now}
		if _, err := r.coll.InsertOne(ctx, lock); err != nil {
			releaseClaimed()
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrSlotLocked
			}
			return nil, fmt.Errorf("failed to acquire slot lock %s: %w", key, err)
		}
		claimed = append(claimed, key)
	}

	return releaseClaimed, nil
}
