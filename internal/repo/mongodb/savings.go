package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patriotcart/savings-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

type SavingsRepository interface {
	Create(ctx context.Context, entry *models.SavingsEntry) error
	GetByID(ctx context.Context, id string) (*models.SavingsEntry, error)
	Update(ctx context.Context, id string, entry *models.SavingsEntry) (*models.SavingsEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, skip int64) ([]models.SavingsEntry, int64, error)
	ListByUser(ctx context.Context, userID string) ([]models.SavingsEntry, error)
	TotalByUser(ctx context.Context, userID string) (float64, error)
}

type savingsRepo struct {
	collection *mongo.Collection
}

func NewSavingsRepository(db *DB) SavingsRepository {
	return &savingsRepo{
		collection: db.Database.Collection("savings_entries"),
	}
}

func (r *savingsRepo) Create(ctx context.Context, entry *models.SavingsEntry) error {
	entry.ID = primitive.NewObjectID()
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.DateSaved.IsZero() {
		entry.DateSaved = now
	}
	// savings defaults to the price delta when the caller left it unset
	if entry.Savings == 0 {
		entry.Savings = entry.RegularPrice - entry.AffiliatePrice
	}

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert savings entry: %w", err)
	}
	return nil
}

func (r *savingsRepo) GetByID(ctx context.Context, id string) (*models.SavingsEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var entry models.SavingsEntry
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find savings entry: %w", err)
	}
	return &entry, nil
}

func (r *savingsRepo) Update(ctx context.Context, id string, entry *models.SavingsEntry) (*models.SavingsEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"product_id":      entry.ProductID,
		"regular_price":   entry.RegularPrice,
		"affiliate_price": entry.AffiliatePrice,
		"savings":         entry.Savings,
		"updated_at":      time.Now(),
		"updated_by":      entry.UpdatedBy,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.SavingsEntry
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update savings entry: %w", err)
	}
	return &updated, nil
}

func (r *savingsRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete savings entry: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *savingsRepo) List(ctx context.Context, limit, skip int64) ([]models.SavingsEntry, int64, error) {
	group, ctx := errgroup.WithContext(ctx)
	var entries []models.SavingsEntry
	var total int64

	group.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: "_id", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit)
		cursor, err := r.collection.Find(ctx, bson.M{}, opts)
		if err != nil {
			return fmt.Errorf("find: %w", err)
		}
		if err := cursor.All(ctx, &entries); err != nil {
			return fmt.Errorf("cursor all: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		var err error
		total, err = r.collection.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("count documents: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *savingsRepo) ListByUser(ctx context.Context, userID string) ([]models.SavingsEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_saved", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"created_by": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find savings by user: %w", err)
	}
	var entries []models.SavingsEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("cursor all: %w", err)
	}
	return entries, nil
}

func (r *savingsRepo) TotalByUser(ctx context.Context, userID string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_by": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$savings"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate savings total: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("cursor all: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
