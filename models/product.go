package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sales statuses shared by products and bookings.
const (
	SalesStatusAvailable = "available"
	SalesStatusSold      = "sold"
)

// Product is a second-hand listing posted by a seller.
type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Image              string             `bson:"image,omitempty" json:"image,omitempty"`
	Location           string             `bson:"location,omitempty" json:"location,omitempty"`
	SellerEmail        string             `bson:"sellerEmail" json:"sellerEmail"`
	CategoryID         string             `bson:"categoryId" json:"categoryId"`
	Price              float64            `bson:"price" json:"price"`
	OriginalPrice      float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Advertised         bool               `bson:"advertised" json:"advertised"`
	Report             bool               `bson:"report" json:"report"`
	SalesStatus        string             `bson:"salesStatus" json:"salesStatus"` // "available" or "sold"
	SellerVerification bool               `bson:"sellerVerification" json:"sellerVerification"`
	PostedAt           time.Time          `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
}
