package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserVerifier marks a single account as verified.
type UserVerifier interface {
	SetVerified(ctx context.Context, email string) (*mongo.UpdateResult, error)
}

// ProductCatalog covers the product-side writes of both cascades.
type ProductCatalog interface {
	MarkSellerVerified(ctx context.Context, sellerEmail string) (*mongo.UpdateResult, error)
	MarkSold(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

// BookingLedger covers the booking-side write of the sale cascade.
type BookingLedger interface {
	MarkSoldByProduct(ctx context.Context, productID string) (*mongo.UpdateResult, error)
}

// Cascade coordinates the state transitions that touch two collections.
// Each transition is two sequential store calls with no transaction and no
// rollback; a failure after the first call leaves the collections
// inconsistent until the operation is retried.
type Cascade struct {
	users    UserVerifier
	products ProductCatalog
	bookings BookingLedger
}

func NewCascade(users UserVerifier, products ProductCatalog, bookings BookingLedger) *Cascade {
	return &Cascade{users: users, products: products, bookings: bookings}
}

// VerifySeller marks the account verified, then flips sellerVerification on
// every listing the seller owns. The returned result is the account
// update's; the listing fan-out reports only errors.
func (c *Cascade) VerifySeller(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	result, err := c.users.SetVerified(ctx, email)
	if err != nil {
		return nil, err
	}

	if _, err := c.products.MarkSellerVerified(ctx, email); err != nil {
		return nil, err
	}
	return result, nil
}

// CompleteSale moves every booking for the product to sold, then the
// product itself. The returned result is the product update's.
func (c *Cascade) CompleteSale(ctx context.Context, productID string) (*mongo.UpdateResult, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, err
	}

	if _, err := c.bookings.MarkSoldByProduct(ctx, productID); err != nil {
		return nil, err
	}
	return c.products.MarkSold(ctx, id)
}
