package affiliate

import (
	"context"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/patriotcart/savings-api/internal/models"
)

// DefaultLimitPerStore is the per-provider result limit when the caller
// does not pass one.
const DefaultLimitPerStore = 10

// SearchParams narrows a live product search. Zero values mean
// "unfiltered"; LimitPerStore of 0 means DefaultLimitPerStore.
type SearchParams struct {
	Query         string
	Tag           models.Tag
	Store         string
	LimitPerStore int
}

// Searcher is the aggregation entry point consumed by the HTTP layer.
type Searcher interface {
	FetchLiveProducts(ctx context.Context, params SearchParams) ([]models.LiveProduct, error)
}

// Aggregator fans out to the registered providers sequentially, classifies
// every result and merges them preserving provider registration order.
type Aggregator struct {
	providers []Provider
}

func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// FetchLiveProducts queries each configured provider (or only the one named
// by Store), tags every result and applies the tag and query post-filters.
// One provider failing never aborts the rest; no configured providers is not
// an error, just an empty feed. A negative LimitPerStore is the only way
// this returns an error.
func (a *Aggregator) FetchLiveProducts(ctx context.Context, params SearchParams) ([]models.LiveProduct, error) {
	if params.LimitPerStore == 0 {
		params.LimitPerStore = DefaultLimitPerStore
	}
	if params.LimitPerStore < 0 {
		return nil, fmt.Errorf("%w: limit per store must be positive, got %d",
			models.ErrInvalidArgument, params.LimitPerStore)
	}

	selected := a.selectProviders(params.Store)
	if len(selected) == 0 {
		log.Warnw(ctx, "no affiliate networks configured")
		return []models.LiveProduct{}, nil
	}

	all := make([]models.LiveProduct, 0, len(selected)*params.LimitPerStore)
	for _, provider := range selected {
		products, err := searchOne(ctx, provider, params.Query, params.LimitPerStore)
		if err != nil {
			log.Errorw(ctx, "error fetching affiliate products",
				"store", provider.Name(), "error", err)
			continue
		}
		for i := range products {
			products[i].Tag = DetectTag(products[i])
		}
		all = append(all, products...)
		log.Infow(ctx, "fetched affiliate products",
			"store", provider.Name(), "count", len(products))
	}

	if params.Tag != "" {
		all = filterByTag(all, params.Tag)
	}
	if params.Query != "" {
		all = filterByQuery(all, params.Query)
	}
	return all, nil
}

func (a *Aggregator) selectProviders(store string) []Provider {
	selected := make([]Provider, 0, len(a.providers))
	for _, p := range a.providers {
		if store != "" && !strings.EqualFold(store, p.Name()) {
			continue
		}
		if !p.Configured() {
			continue
		}
		selected = append(selected, p)
	}
	return selected
}

// searchOne shields the aggregation loop from a misbehaving provider: a
// panic inside an adapter becomes a per-provider error, not a dropped
// request.
func searchOne(ctx context.Context, p Provider, query string, limit int) (products []models.LiveProduct, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return p.SearchProducts(ctx, query, limit)
}

func filterByTag(products []models.LiveProduct, tag models.Tag) []models.LiveProduct {
	out := make([]models.LiveProduct, 0, len(products))
	for _, p := range products {
		if p.Tag == tag {
			out = append(out, p)
		}
	}
	return out
}

// filterByQuery re-filters merged results by name/description substring.
// Providers already receive the query, but some ignore it or return
// superset results, so the match is enforced again here.
func filterByQuery(products []models.LiveProduct, query string) []models.LiveProduct {
	q := strings.ToLower(query)
	out := make([]models.LiveProduct, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
