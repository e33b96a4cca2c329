package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.DB().Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByGoogleID retrieves a user by its Google account ID.
func (r *MongoUserRepo) GetByGoogleID(googleID string) (*models.User, error) {
	return r.findOne(bson.M{"googleId": googleID})
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

// GetAdmin retrieves the administrator whose calendar receives bookings.
func (r *MongoUserRepo) GetAdmin() (*models.User, error) {
	return r.findOne(bson.M{"isAdmin": true})
}

// GetAllWithProjection retrieves all users with an optional projection,
// newest first. Pass nil to retrieve full documents.
func (r *MongoUserRepo) GetAllWithProjection(projection bson.M) ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Create inserts a new user record.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update replaces an existing user record.
func (r *MongoUserRepo) Update(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", user.ID)
	}
	return nil
}

func (r *MongoUserRepo) findOneAndUpdate(id string, update bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return &user, nil
}

// SetAdminStatus flips the admin flag and returns the updated user.
func (r *MongoUserRepo) SetAdminStatus(id string, isAdmin bool) (*models.User, error) {
	return r.findOneAndUpdate(id, bson.M{"$set": bson.M{"isAdmin": isAdmin}})
}

// SetSuperAdminStatus flips the super-admin flag. Granting super admin also
// grants admin; revoking it leaves the admin flag untouched.
func (r *MongoUserRepo) SetSuperAdminStatus(id string, isSuperAdmin bool) (*models.User, error) {
	set := bson.M{"isSuperAdmin": isSuperAdmin}
	if isSuperAdmin {
		set["isAdmin"] = true
	}
	return r.findOneAndUpdate(id, bson.M{"$set": set})
}

// RoleCounts returns total, admin and super-admin user counts.
func (r *MongoUserRepo) RoleCounts() (int64, int64, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count users: %w", err)
	}
	admins, err := r.coll.CountDocuments(ctx, bson.M{"isAdmin": true})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count admins: %w", err)
	}
	superAdmins, err := r.coll.CountDocuments(ctx, bson.M{"isSuperAdmin": true})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count super admins: %w", err)
	}
	return total, admins, superAdmins, nil
}
