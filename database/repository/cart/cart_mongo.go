package cartRepo

import (
	"context"
	"fmt"
	"time"

	"priisme/database"
	"priisme/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCartRepo implements CartRepository using MongoDB.
type MongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo creates a new CartRepository backed by the cart_items collection.
func NewMongoCartRepo() CartRepository {
	coll := database.Collection("cart_items")
	repo := &MongoCartRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create cart_items indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCartRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		// One row per (user, product, size, color) tuple.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "product_id", Value: 1},
				{Key: "size", Value: 1},
				{Key: "color", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// ListByUser returns the user's items newest first, each carrying the
// denormalized product name/price/image via a $lookup against products.
func (r *MongoCartRepo) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "product_id",
			"foreignField": "id",
			"as":           "product_docs",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"product": bson.M{"$arrayElemAt": bson.A{"$product_docs", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"product_docs": 0}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items for user %s: %w", userID, err)
	}
	return items, nil
}

// Insert creates a new line item document.
func (r *MongoCartRepo) Insert(ctx context.Context, item *models.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	// The denormalized product view is query-time only.
	doc := *item
	doc.Product = nil

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of one of the user's items. An item ID
// owned by a different user matches nothing and reports ErrItemNotFound.
func (r *MongoCartRepo) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": itemID, "user_id": userID}
	update := bson.M{"$set": bson.M{"quantity": quantity}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update quantity for cart item %s: %w", itemID, err)
	}
	if result.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Delete removes one of the user's items.
func (r *MongoCartRepo) Delete(ctx context.Context, userID, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": itemID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", itemID, err)
	}
	if result.DeletedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteByUser removes every item owned by the user.
func (r *MongoCartRepo) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
