package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/CorprexAhmed/Corprex-Scheduler/database"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMeetingRepo implements MeetingRepository using MongoDB.
type MongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo creates a new instance of MeetingRepository using MongoDB.
func NewMongoMeetingRepo() MeetingRepository {
	coll := database.MongoClient.Database("corprex").Collection("meetings")
	repo := &MongoMeetingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create meeting indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new meeting document.
func (r *MongoMeetingRepo) Create(meeting *models.Meeting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, meeting)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// UpdateStatus transitions a meeting's status by ID.
func (r *MongoMeetingRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update meeting %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("meeting with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a meeting by its unique ID.
func (r *MongoMeetingRepo) GetByID(id string) (*models.Meeting, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var meeting models.Meeting
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&meeting); err != nil {
		return nil, fmt.Errorf("failed to fetch meeting %s: %w", id, err)
	}
	return &meeting, nil
}

// GetByStatus retrieves all meetings with the given status; an empty status
// returns everything. Results are sorted by (date, createdAt); the engine
// re-sorts by parsed time-of-day for the dashboard.
func (r *MongoMeetingRepo) GetByStatus(status string) ([]models.Meeting, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}
