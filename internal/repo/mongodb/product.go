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

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, skip int64) ([]models.Product, int64, error)
	Search(ctx context.Context, filter models.ProductFilter, limit, skip int64) ([]models.Product, int64, error)
}

type productRepo struct {
	collection *mongo.Collection
}

func NewProductRepository(db *DB) ProductRepository {
	return &productRepo{
		collection: db.Database.Collection("products"),
	}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	if product.Tag == "" {
		product.Tag = models.TagNone
	}

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":          product.Name,
		"brand":         product.Brand,
		"description":   product.Description,
		"price":         product.Price,
		"store":         product.Store,
		"category":      product.Category,
		"affiliate_url": product.AffiliateURL,
		"image_url":     product.ImageURL,
		"tag":           product.Tag,
		"updated_at":    time.Now(),
		"updated_by":    product.UpdatedBy,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &updated, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *productRepo) List(ctx context.Context, limit, skip int64) ([]models.Product, int64, error) {
	return r.paginate(ctx, bson.M{}, limit, skip)
}

func (r *productRepo) Search(ctx context.Context, filter models.ProductFilter, limit, skip int64) ([]models.Product, int64, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Name, Options: "i"}}
	}
	if filter.Store != "" {
		query["store"] = filter.Store
	}
	if filter.Tag != "" {
		query["tag"] = filter.Tag
	}
	return r.paginate(ctx, query, limit, skip)
}

// paginate runs the page query and the total count concurrently, newest
// products first.
func (r *productRepo) paginate(ctx context.Context, query bson.M, limit, skip int64) ([]models.Product, int64, error) {
	group, ctx := errgroup.WithContext(ctx)
	var products []models.Product
	var total int64

	group.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: "_id", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit)
		cursor, err := r.collection.Find(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("find: %w", err)
		}
		if err := cursor.All(ctx, &products); err != nil {
			return fmt.Errorf("cursor all: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		var err error
		total, err = r.collection.CountDocuments(ctx, query)
		if err != nil {
			return fmt.Errorf("count documents: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
