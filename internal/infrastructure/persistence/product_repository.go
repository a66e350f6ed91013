package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
)

// MongoProductRepository implements catalog.ProductRepository on a
// mongo collection
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new MongoProductRepository
func NewMongoProductRepository(db *Database) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Collection(CollectionProducts)}
}

// FindByID retrieves a product by identifier
func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	var doc models.ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: product %s", shared.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: finding product %s: %v", shared.ErrStorage, id, err)
	}
	return doc.ToProduct()
}

// FindAll returns the full catalog
func (r *MongoProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: listing products: %v", shared.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var products []catalog.Product
	for cursor.Next(ctx) {
		var doc models.ProductDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decoding product: %v", shared.ErrStorage, err)
		}
		product, err := doc.ToProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating products: %v", shared.ErrStorage, err)
	}
	return products, nil
}

// Insert stores a new product
func (r *MongoProductRepository) Insert(ctx context.Context, p *catalog.Product) error {
	if _, err := r.collection.InsertOne(ctx, models.FromProduct(p)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: product %s", shared.ErrAlreadyExists, p.ID)
		}
		return fmt.Errorf("%w: inserting product %s: %v", shared.ErrStorage, p.ID, err)
	}
	return nil
}
