package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is read-only reference data for grouping product listings.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
