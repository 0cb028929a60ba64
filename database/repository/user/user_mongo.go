package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CorprexAhmed/Corprex-Scheduler/database"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no account matches the query.
var ErrNotFound = errors.New("admin user not found")

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database("corprex").Collection("adminUsers")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create admin user indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves an account by its unique ID.
func (r *MongoUserRepo) GetByID(id string) (*models.AdminUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.AdminUser
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin user %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves an account by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.AdminUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.AdminUser
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin user by email: %w", err)
	}
	return &user, nil
}

// GetAll retrieves all accounts.
func (r *MongoUserRepo) GetAll() ([]models.AdminUser, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query admin users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.AdminUser
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode admin users: %w", err)
	}
	return users, nil
}

// Create inserts a new account document.
func (r *MongoUserRepo) Create(user *models.AdminUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	user.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// Update modifies an existing account document.
func (r *MongoUserRepo) Update(user *models.AdminUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": user.ID}
	update := bson.M{"$set": user}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update admin user %s: %w", user.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an account document by its ID.
func (r *MongoUserRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete admin user %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
