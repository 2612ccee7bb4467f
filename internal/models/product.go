package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry persisted in Mongo. Curated products are
// created through the admin API; live affiliate results are never stored
// here, they flow through LiveProduct instead.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Store        string             `bson:"store,omitempty" json:"store,omitempty"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	AffiliateURL string             `bson:"affiliate_url,omitempty" json:"affiliate_url,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Tag          Tag                `bson:"tag" json:"tag"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy    string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy    string             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// LiveProduct is a product fetched from an affiliate network. It is built
// fresh on every search and has no identity across calls; ProviderID is the
// upstream identifier (ASIN, itemId) kept for reference only.
type LiveProduct struct {
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url,omitempty"`
	AffiliateURL string  `json:"affiliate_url,omitempty"`
	Store        string  `json:"store"`
	Tag          Tag     `json:"tag"`
	ProviderID   string  `json:"provider_id,omitempty"`
}

// ProductFilter narrows catalog searches. Zero values mean "no constraint".
type ProductFilter struct {
	Name  string
	Store string
	Tag   Tag
}
