package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/patriotcart/savings-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnalyticsRepository interface {
	Insert(ctx context.Context, event *models.AnalyticsEvent) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountsByType(ctx context.Context, userID string) ([]models.EventTypeCount, error)
	RecentByUser(ctx context.Context, userID string, limit int64) ([]models.AnalyticsEvent, error)
}

type analyticsRepo struct {
	collection *mongo.Collection
}

func NewAnalyticsRepository(db *DB) AnalyticsRepository {
	return &analyticsRepo{
		collection: db.Database.Collection("analytics_events"),
	}
}

func (r *analyticsRepo) Insert(ctx context.Context, event *models.AnalyticsEvent) error {
	event.ID = primitive.NewObjectID()
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

func (r *analyticsRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count analytics events: %w", err)
	}
	return total, nil
}

func (r *analyticsRepo) CountsByType(ctx context.Context, userID string) ([]models.EventTypeCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$event_type",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate event counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.EventTypeCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("cursor all: %w", err)
	}
	return counts, nil
}

func (r *analyticsRepo) RecentByUser(ctx context.Context, userID string, limit int64) ([]models.AnalyticsEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent events: %w", err)
	}
	var events []models.AnalyticsEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("cursor all: %w", err)
	}
	return events, nil
}
