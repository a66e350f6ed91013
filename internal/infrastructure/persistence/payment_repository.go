package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shop/backend/internal/domain/billing"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
)

// MongoPaymentRepository implements billing.PaymentRepository on a
// mongo collection
type MongoPaymentRepository struct {
	collection *mongo.Collection
}

// NewMongoPaymentRepository creates a new MongoPaymentRepository
func NewMongoPaymentRepository(db *Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{collection: db.Collection(CollectionPayments)}
}

// FindAll returns all payment records
func (r *MongoPaymentRepository) FindAll(ctx context.Context) ([]billing.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: listing payments: %v", shared.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var payments []billing.Payment
	for cursor.Next(ctx) {
		var doc models.PaymentDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decoding payment: %v", shared.ErrStorage, err)
		}
		payment, err := doc.ToPayment()
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payments: %v", shared.ErrStorage, err)
	}
	return payments, nil
}

// Insert stores a new payment record
func (r *MongoPaymentRepository) Insert(ctx context.Context, p *billing.Payment) error {
	if _, err := r.collection.InsertOne(ctx, models.FromPayment(p)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: payment %s", shared.ErrAlreadyExists, p.ID)
		}
		return fmt.Errorf("%w: inserting payment %s: %v", shared.ErrStorage, p.ID, err)
	}
	return nil
}
