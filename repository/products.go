package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gamicon-server/models"
)

// ProductRepository is the products collection facade.
type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

// advertisedFilter matches listings promoted to the home page. Sold items
// never show up there, whatever their advertised flag says.
func advertisedFilter() bson.M {
	return bson.M{
		"advertised":  true,
		"salesStatus": models.SalesStatusAvailable,
	}
}

// categoryFilter matches the still-available listings of one category.
func categoryFilter(categoryID string) bson.M {
	return bson.M{
		"categoryId":  categoryID,
		"salesStatus": models.SalesStatusAvailable,
	}
}

// Insert stores a new listing.
func (r *ProductRepository) Insert(ctx context.Context, product models.Product) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.collection.InsertOne(ctx, product)
}

// FindBySeller lists every listing posted from the given seller email.
func (r *ProductRepository) FindBySeller(ctx context.Context, email string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"sellerEmail": email})
}

// FindAdvertised lists the advertised listings still available for sale.
func (r *ProductRepository) FindAdvertised(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, advertisedFilter())
}

// FindByCategory lists the available listings in one category.
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return r.find(ctx, categoryFilter(categoryID))
}

// FindReported lists every listing flagged by a report.
func (r *ProductRepository) FindReported(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"report": true})
}

// SetAdvertised promotes a listing. The flag is never cleared.
func (r *ProductRepository) SetAdvertised(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return r.setFlag(ctx, id, "advertised")
}

// SetReported flags a listing as reported. The flag is never cleared.
func (r *ProductRepository) SetReported(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return r.setFlag(ctx, id, "report")
}

// MarkSellerVerified flips sellerVerification on every listing owned by the
// given seller.
func (r *ProductRepository) MarkSellerVerified(ctx context.Context, sellerEmail string) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"sellerVerification": true}}
	return r.collection.UpdateMany(ctx, bson.M{"sellerEmail": sellerEmail}, update)
}

// MarkSold moves a single listing to sold.
func (r *ProductRepository) MarkSold(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"salesStatus": models.SalesStatusSold}}
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
}

// Delete removes a listing.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) setFlag(ctx context.Context, id primitive.ObjectID, field string) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: true}}
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
}
