package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking records a buyer's claim on a product. Its sales status mirrors
// the referenced product's status once the sale completes.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	BuyerEmail  string             `bson:"buyerEmail" json:"buyerEmail"`
	Price       float64            `bson:"price" json:"price"`
	SalesStatus string             `bson:"salesStatus" json:"salesStatus"` // "available" or "sold"
}
