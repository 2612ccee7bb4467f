package app

import (
	"context"
	"fmt"
	"time"

	"github.com/patriotcart/savings-api/internal/cache"
	"github.com/patriotcart/savings-api/internal/config"
	"github.com/patriotcart/savings-api/internal/events"
	"github.com/patriotcart/savings-api/internal/repo/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

func newMongoDB(lc fx.Lifecycle, cfg *config.Config) (*mongodb.DB, error) {
	opts := options.Client().
		SetAppName("savings-api").
		ApplyURI(cfg.Database.URI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("init mongo client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return &mongodb.DB{
		Client:   client,
		Database: client.Database(cfg.Database.Database),
	}, nil
}

func newCache(lc fx.Lifecycle, cfg *config.Config) (cache.Cache, error) {
	store, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if mem, ok := store.(*cache.Memory); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				mem.Close()
				return nil
			},
		})
	}
	return store, nil
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config) events.Publisher {
	publisher := events.NewPublisher(cfg)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
