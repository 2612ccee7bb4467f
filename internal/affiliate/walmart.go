package affiliate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-resty/resty/v2"
	"github.com/patriotcart/savings-api/internal/cache"
	"github.com/patriotcart/savings-api/internal/config"
	"github.com/patriotcart/savings-api/internal/models"
)

const (
	walmartStoreName      = "Walmart"
	defaultWalmartBaseURL = "https://developer.api.walmart.com/api-proxy/service/affil/product/v2"
)

// Walmart wraps the Walmart affiliate product search API.
//
// Query parameters: apiKey, query, numItems, format=json against
// {baseURL}/search. Mapping defaults: name falls back to "Unknown Product",
// brand to "Unknown", the image prefers largeImage over mediumImage, and the
// affiliate URL is the tracking URL (or plain product URL) with the
// affiliate campaign id appended.
type Walmart struct {
	cfg     config.WalmartConfig
	http    *resty.Client
	store   cache.Cache
	ttl     time.Duration
	baseURL string
}

func NewWalmart(cfg *config.Config, client *resty.Client, store cache.Cache) *Walmart {
	return &Walmart{
		cfg:     cfg.Walmart,
		http:    client,
		store:   store,
		ttl:     cfg.Cache.TTL,
		baseURL: defaultWalmartBaseURL,
	}
}

func (w *Walmart) Name() string { return walmartStoreName }

func (w *Walmart) Configured() bool {
	return w.cfg.APIKey != "" && w.cfg.AffiliateID != ""
}

func (w *Walmart) SearchProducts(ctx context.Context, query string, limit int) ([]models.LiveProduct, error) {
	if !w.Configured() {
		log.Warnw(ctx, "walmart api not configured")
		return nil, nil
	}

	key := searchCacheKey(walmartStoreName, query, limit)
	if products, ok := cachedProducts(ctx, w.store, key); ok {
		return products, nil
	}

	var result walmartSearchResponse
	resp, err := w.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":   w.cfg.APIKey,
			"query":    query,
			"numItems": strconv.Itoa(limit),
			"format":   "json",
		}).
		SetResult(&result).
		Get(w.baseURL + "/search")
	if err != nil {
		log.Errorw(ctx, "walmart api error", "error", err)
		return nil, nil
	}
	if resp.IsError() {
		log.Errorw(ctx, "walmart api error", "status", resp.StatusCode())
		return nil, nil
	}

	products := make([]models.LiveProduct, 0, len(result.Items))
	for _, item := range result.Items {
		products = append(products, w.mapItem(item))
	}

	cacheProducts(ctx, w.store, key, products, w.ttl)
	return products, nil
}

func (w *Walmart) mapItem(item walmartItem) models.LiveProduct {
	name := item.Name
	if name == "" {
		name = "Unknown Product"
	}

	brand := item.BrandName
	if brand == "" {
		brand = "Unknown"
	}

	image := item.LargeImage
	if image == "" {
		image = item.MediumImage
	}

	productURL := item.ProductTrackingURL
	if productURL == "" {
		productURL = item.ProductURL
	}
	affiliateURL := ""
	if productURL != "" {
		affiliateURL = fmt.Sprintf("%s?affcamid=%s", productURL, w.cfg.AffiliateID)
	}

	return models.LiveProduct{
		Name:         name,
		Brand:        brand,
		Description:  item.ShortDescription,
		Price:        item.SalePrice,
		ImageURL:     image,
		AffiliateURL: affiliateURL,
		Store:        walmartStoreName,
		ProviderID:   strconv.FormatInt(item.ItemID, 10),
	}
}

type walmartSearchResponse struct {
	Items []walmartItem `json:"items"`
}

type walmartItem struct {
	ItemID             int64   `json:"itemId"`
	Name               string  `json:"name"`
	BrandName          string  `json:"brandName"`
	ShortDescription   string  `json:"shortDescription"`
	SalePrice          float64 `json:"salePrice"`
	LargeImage         string  `json:"largeImage"`
	MediumImage        string  `json:"mediumImage"`
	ProductTrackingURL string  `json:"productTrackingUrl"`
	ProductURL         string  `json:"productUrl"`
}
