package aimodelRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CorprexAhmed/Corprex-Scheduler/database"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no model config matches the query.
var ErrNotFound = errors.New("model config not found")

// MongoAIModelRepo implements AIModelRepository using MongoDB.
type MongoAIModelRepo struct {
	coll *mongo.Collection
}

// NewMongoAIModelRepo creates a new instance of AIModelRepository using MongoDB.
func NewMongoAIModelRepo() AIModelRepository {
	coll := database.MongoClient.Database("corprex").Collection("aiModels")
	return &MongoAIModelRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a model config by its unique ID.
func (r *MongoAIModelRepo) GetByID(id string) (*models.AIModelConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cfg models.AIModelConfig
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model config %s: %w", id, err)
	}
	return &cfg, nil
}

// GetAll retrieves all model configs.
func (r *MongoAIModelRepo) GetAll() ([]models.AIModelConfig, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query model configs: %w", err)
	}
	defer cursor.Close(ctx)

	var cfgs []models.AIModelConfig
	if err := cursor.All(ctx, &cfgs); err != nil {
		return nil, fmt.Errorf("failed to decode model configs: %w", err)
	}
	return cfgs, nil
}

// Upsert inserts or replaces a model config record.
func (r *MongoAIModelRepo) Upsert(cfg *models.AIModelConfig) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cfg.UpdatedAt = time.Now()
	filter := bson.M{"id": cfg.ID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, cfg, opts); err != nil {
		return fmt.Errorf("failed to upsert model config %s: %w", cfg.ID, err)
	}
	return nil
}

// Delete removes a model config record by its ID.
func (r *MongoAIModelRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete model config %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
