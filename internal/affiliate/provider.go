// Package affiliate aggregates live product search results from third-party
// retail affiliate networks into one normalized feed.
package affiliate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/patriotcart/savings-api/internal/cache"
	"github.com/patriotcart/savings-api/internal/models"
)

// Provider wraps one retail network's product search API.
type Provider interface {
	Name() string
	// Configured reports whether all required credentials are present.
	// Unconfigured providers never dial out and contribute no results.
	Configured() bool
	// SearchProducts returns normalized products for the query. Transport and
	// payload failures are absorbed: the call logs and returns an empty
	// slice, it never propagates upstream errors.
	SearchProducts(ctx context.Context, query string, limit int) ([]models.LiveProduct, error)
}

func searchCacheKey(store, query string, limit int) string {
	return fmt.Sprintf("%s_search_%s_%d", strings.ToLower(store), query, limit)
}

func cachedProducts(ctx context.Context, store cache.Cache, key string) ([]models.LiveProduct, bool) {
	raw, ok := store.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var products []models.LiveProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Warnw(ctx, "dropping undecodable cache entry", "key", key, "error", err)
		return nil, false
	}
	return products, true
}

func cacheProducts(ctx context.Context, store cache.Cache, key string, products []models.LiveProduct, ttl time.Duration) {
	raw, err := json.Marshal(products)
	if err != nil {
		log.Warnw(ctx, "marshal products for cache", "key", key, "error", err)
		return
	}
	store.Set(ctx, key, raw, ttl)
}
