package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/models"
)

// BookingRepository is the bookings collection facade.
type BookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection("bookings")}
}

// Insert stores a new booking.
func (r *BookingRepository) Insert(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.collection.InsertOne(ctx, booking)
}

// FindByBuyer lists every booking placed by the given buyer email.
func (r *BookingRepository) FindByBuyer(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"buyerEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// MarkSoldByProduct moves every booking that references the given product
// to sold, not only the winning buyer's.
func (r *BookingRepository) MarkSoldByProduct(ctx context.Context, productID string) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"salesStatus": models.SalesStatusSold}}
	return r.collection.UpdateMany(ctx, bson.M{"productId": productID}, update)
}
