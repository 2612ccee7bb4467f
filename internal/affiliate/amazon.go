package affiliate

import (
	"context"
	"strconv"
	"strings"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-resty/resty/v2"
	"github.com/patriotcart/savings-api/internal/cache"
	"github.com/patriotcart/savings-api/internal/config"
	"github.com/patriotcart/savings-api/internal/models"
)

const (
	amazonStoreName      = "Amazon"
	defaultAmazonBaseURL = "https://webservices.amazon.com/paapi5/searchitems"
)

// Amazon wraps the Product Advertising search API.
//
// Query parameters: apiKey, secret, partnerTag, region, keywords, itemCount,
// format=json. Mapping defaults: price is the first offer listing (0 when no
// offers), description joins the first two feature strings, brand falls back
// to "Unknown", the provider id is the ASIN.
type Amazon struct {
	cfg     config.AmazonConfig
	http    *resty.Client
	store   cache.Cache
	ttl     time.Duration
	baseURL string
}

func NewAmazon(cfg *config.Config, client *resty.Client, store cache.Cache) *Amazon {
	return &Amazon{
		cfg:     cfg.Amazon,
		http:    client,
		store:   store,
		ttl:     cfg.Cache.TTL,
		baseURL: defaultAmazonBaseURL,
	}
}

func (a *Amazon) Name() string { return amazonStoreName }

func (a *Amazon) Configured() bool {
	return a.cfg.APIKey != "" && a.cfg.APISecret != "" && a.cfg.AffiliateTag != ""
}

func (a *Amazon) SearchProducts(ctx context.Context, query string, limit int) ([]models.LiveProduct, error) {
	if !a.Configured() {
		log.Warnw(ctx, "amazon api not configured")
		return nil, nil
	}

	key := searchCacheKey(amazonStoreName, query, limit)
	if products, ok := cachedProducts(ctx, a.store, key); ok {
		return products, nil
	}

	var result amazonSearchResponse
	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":     a.cfg.APIKey,
			"secret":     a.cfg.APISecret,
			"partnerTag": a.cfg.AffiliateTag,
			"region":     a.cfg.Region,
			"keywords":   query,
			"itemCount":  strconv.Itoa(limit),
			"format":     "json",
		}).
		SetResult(&result).
		Get(a.baseURL)
	if err != nil {
		log.Errorw(ctx, "amazon api error", "error", err)
		return nil, nil
	}
	if resp.IsError() {
		log.Errorw(ctx, "amazon api error", "status", resp.StatusCode())
		return nil, nil
	}

	products := make([]models.LiveProduct, 0, len(result.ItemsResult.Items))
	for _, item := range result.ItemsResult.Items {
		products = append(products, mapAmazonItem(item))
	}

	cacheProducts(ctx, a.store, key, products, a.ttl)
	return products, nil
}

func mapAmazonItem(item amazonItem) models.LiveProduct {
	var price float64
	if len(item.Offers.Listings) > 0 {
		price = item.Offers.Listings[0].Price.Amount
	}

	features := item.ItemInfo.Features.DisplayValues
	if len(features) > 2 {
		features = features[:2]
	}

	brand := item.ItemInfo.ByLineInfo.Brand.DisplayValue
	if brand == "" {
		brand = "Unknown"
	}

	return models.LiveProduct{
		Name:         item.ItemInfo.Title.DisplayValue,
		Brand:        brand,
		Description:  strings.Join(features, " "),
		Price:        price,
		ImageURL:     item.Images.Primary.Large.URL,
		AffiliateURL: item.DetailPageURL,
		Store:        amazonStoreName,
		ProviderID:   item.ASIN,
	}
}

type amazonSearchResponse struct {
	ItemsResult struct {
		Items []amazonItem `json:"Items"`
	} `json:"ItemsResult"`
}

type amazonItem struct {
	ASIN          string `json:"ASIN"`
	DetailPageURL string `json:"DetailPageURL"`
	ItemInfo      struct {
		Title struct {
			DisplayValue string `json:"DisplayValue"`
		} `json:"Title"`
		ByLineInfo struct {
			Brand struct {
				DisplayValue string `json:"DisplayValue"`
			} `json:"Brand"`
		} `json:"ByLineInfo"`
		Features struct {
			DisplayValues []string `json:"DisplayValues"`
		} `json:"Features"`
	} `json:"ItemInfo"`
	Images struct {
		Primary struct {
			Large struct {
				URL string `json:"URL"`
			} `json:"Large"`
		} `json:"Primary"`
	} `json:"Images"`
	Offers struct {
		Listings []struct {
			Price struct {
				Amount float64 `json:"Amount"`
			} `json:"Price"`
		} `json:"Listings"`
	} `json:"Offers"`
}
