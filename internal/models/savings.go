package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavingsEntry records how much a user saved buying a product through an
// affiliate link instead of at the regular price.
type SavingsEntry struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID      primitive.ObjectID `bson:"product_id" json:"product_id"`
	RegularPrice   float64            `bson:"regular_price" json:"regular_price"`
	AffiliatePrice float64            `bson:"affiliate_price" json:"affiliate_price"`
	Savings        float64            `bson:"savings" json:"savings"`
	DateSaved      time.Time          `bson:"date_saved" json:"date_saved"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy      string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy      string             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}
