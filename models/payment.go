package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed checkout. TransactionID
// is the processor's reference for the charge.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
}
