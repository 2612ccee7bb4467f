package affiliate

import (
	"testing"

	"github.com/patriotcart/savings-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectTag(t *testing.T) {
	tests := []struct {
		name    string
		product models.LiveProduct
		want    models.Tag
	}{
		{
			name: "american made and tariff free",
			product: models.LiveProduct{
				Name:        "Proudly Made in USA Widget",
				Description: "tariff free import",
			},
			want: models.TagBoth,
		},
		{
			name: "american made only",
			product: models.LiveProduct{
				Name: "Widget",
				Description: "Manufactured in USA with pride",
			},
			want: models.TagAmericanMade,
		},
		{
			name: "tariff free only",
			product: models.LiveProduct{
				Name: "Imported Gadget",
				Description: "duty free shopping",
			},
			want: models.TagTariffFree,
		},
		{
			name: "assembled in usa only",
			product: models.LiveProduct{
				Name: "Assembled in USA Gadget",
			},
			want: models.TagAssembledUSA,
		},
		{
			name: "assembled loses to tariff free",
			product: models.LiveProduct{
				Name:        "Assembled in USA Gadget",
				Description: "zero tariff product",
			},
			want: models.TagTariffFree,
		},
		{
			name: "assembled loses to american made",
			product: models.LiveProduct{
				Name:        "USA Made, assembled in usa",
				Description: "",
			},
			want: models.TagAmericanMade,
		},
		{
			name: "keyword in brand counts",
			product: models.LiveProduct{
				Name:  "Plain Widget",
				Brand: "American Made Co",
			},
			want: models.TagAmericanMade,
		},
		{
			name: "case insensitive",
			product: models.LiveProduct{
				Name: "MADE IN USA toolbox",
			},
			want: models.TagAmericanMade,
		},
		{
			name:    "no signals",
			product: models.LiveProduct{Name: "Generic Import"},
			want:    models.TagNone,
		},
		{
			name:    "empty product",
			product: models.LiveProduct{},
			want:    models.TagNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTag(tt.product))
		})
	}
}

func TestDetectTagDeterministic(t *testing.T) {
	product := models.LiveProduct{
		Name:        "Proudly Made in USA Widget",
		Brand:       "Acme",
		Description: "no tariff on this one",
		Price:       19.99,
		Store:       "Amazon",
	}

	first := DetectTag(product)
	for range 100 {
		assert.Equal(t, first, DetectTag(product))
	}
	// fields outside name/brand/description have no influence
	product.Price = 0
	product.Store = "Walmart"
	product.AffiliateURL = "https://example.com"
	assert.Equal(t, first, DetectTag(product))
}

func TestDetectTagAlwaysReturnsKnownTag(t *testing.T) {
	products := []models.LiveProduct{
		{},
		{Name: "made in usa"},
		{Name: "tariff exempt"},
		{Name: "usa assembly"},
		{Name: "made in usa tariff free assembled in usa"},
	}
	for _, p := range products {
		assert.True(t, DetectTag(p).IsValid())
	}
}
