package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
)

// MongoCartStore implements cart.Store on a mongo collection
type MongoCartStore struct {
	collection *mongo.Collection
}

// NewMongoCartStore creates a new MongoCartStore
func NewMongoCartStore(db *Database) *MongoCartStore {
	return &MongoCartStore{collection: db.Collection(CollectionCarts)}
}

// FindByUserID retrieves the cart owned by a user
func (s *MongoCartStore) FindByUserID(ctx context.Context, userID string) (*cart.Cart, error) {
	var doc models.CartDocument
	err := s.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user %s", cart.ErrCartNotFound, userID)
		}
		return nil, fmt.Errorf("%w: finding cart for user %s: %v", shared.ErrStorage, userID, err)
	}
	return doc.ToCart(), nil
}

// FindGreatestID returns the highest allocated cart identifier, or the
// empty string when no cart exists. The sort runs on the numeric seq
// field, not the identifier string, so it stays correct across padding
// width changes.
func (s *MongoCartStore) FindGreatestID(ctx context.Context) (string, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "seq", Value: -1}}).
		SetProjection(bson.M{"id": 1})

	var doc models.CartDocument
	err := s.collection.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("%w: finding greatest cart id: %v", shared.ErrStorage, err)
	}
	return doc.ID, nil
}

// Insert stores a new cart. A duplicate key on the unique id index
// means another writer claimed the identifier first.
func (s *MongoCartStore) Insert(ctx context.Context, c *cart.Cart) error {
	doc, err := models.FromCart(c)
	if err != nil {
		return err
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: cart %s", shared.ErrAlreadyExists, c.ID)
		}
		return fmt.Errorf("%w: inserting cart %s: %v", shared.ErrStorage, c.ID, err)
	}
	return nil
}

// ReplaceItems overwrites the item lines of an existing cart
func (s *MongoCartStore) ReplaceItems(ctx context.Context, userID string, items []cart.Item, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"items":     models.FromCartItems(items),
		"updatedAt": updatedAt,
	}}

	result, err := s.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("%w: replacing items for user %s: %v", shared.ErrStorage, userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user %s", cart.ErrCartNotFound, userID)
	}
	return nil
}
