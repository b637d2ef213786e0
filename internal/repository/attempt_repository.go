package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// AttemptRepository is the append-only attempt history. Each attempt is a
// single document, so an insert is atomic and readers never observe a
// partial record.
type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	// Majority write concern: Record must be durable before it returns,
	// because the very next generate call reads the window it changes.
	col := db.Collection("attempts",
		options.Collection().SetWriteConcern(writeconcern.Majority()))
	return &AttemptRepository{Col: col}
}

// RecentAttempts returns up to limit attempts newest-first. topic == ""
// returns every attempt; otherwise only attempts containing at least one
// outcome for that topic.
func (r *AttemptRepository) RecentAttempts(ctx context.Context, studentID string, topic models.Topic, limit int) ([]models.AttemptRecord, error) {
	filter := bson.M{"student_id": studentID}
	if topic != "" {
		filter["outcomes.topic"] = topic
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "taken_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	attempts := []models.AttemptRecord{}
	for cur.Next(ctx) {
		var a models.AttemptRecord
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, cur.Err()
}

// AllAttempts returns the full history oldest-first, for dashboards.
func (r *AttemptRepository) AllAttempts(ctx context.Context, studentID string) ([]models.AttemptRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "taken_at", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	attempts := []models.AttemptRecord{}
	for cur.Next(ctx) {
		var a models.AttemptRecord
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, cur.Err()
}

func (r *AttemptRepository) Record(ctx context.Context, attempt *models.AttemptRecord) error {
	if attempt.ID == "" {
		attempt.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}
