package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/models"
)

// PaymentRepository is the payments collection facade. The collection is an
// append-only log; nothing in the service updates or deletes entries.
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{collection: db.Collection("payments")}
}

// Insert appends a payment record.
func (r *PaymentRepository) Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.collection.InsertOne(ctx, payment)
}
