package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shop/backend/internal/domain/identity"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
)

// MongoUserRepository implements identity.UserRepository on a mongo
// collection
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(CollectionUsers)}
}

// FindByID retrieves a user by identifier
func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*identity.User, error) {
	var doc models.UserDocument
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user %s", shared.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: finding user %s: %v", shared.ErrStorage, id, err)
	}
	return doc.ToUser(), nil
}

// FindByEmail retrieves a user by email
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var doc models.UserDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: no user with that email", shared.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: finding user by email: %v", shared.ErrStorage, err)
	}
	return doc.ToUser(), nil
}

// FindGreatestID returns the highest allocated user identifier, or the
// empty string when no user exists
func (r *MongoUserRepository) FindGreatestID(ctx context.Context) (string, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "seq", Value: -1}}).
		SetProjection(bson.M{"id": 1})

	var doc models.UserDocument
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("%w: finding greatest user id: %v", shared.ErrStorage, err)
	}
	return doc.ID, nil
}

// Insert stores a new user. A duplicate key on either unique index
// (id or email) reports a conflict.
func (r *MongoUserRepository) Insert(ctx context.Context, u *identity.User) error {
	doc, err := models.FromUser(u)
	if err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: user %s", shared.ErrAlreadyExists, u.ID)
		}
		return fmt.Errorf("%w: inserting user %s: %v", shared.ErrStorage, u.ID, err)
	}
	return nil
}

// Update overwrites the stored user document
func (r *MongoUserRepository) Update(ctx context.Context, u *identity.User) error {
	doc, err := models.FromUser(u)
	if err != nil {
		return err
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": u.ID}, doc)
	if err != nil {
		return fmt.Errorf("%w: updating user %s: %v", shared.ErrStorage, u.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user %s", shared.ErrNotFound, u.ID)
	}
	return nil
}

// MongoAdminRepository implements identity.AdminRepository on a mongo
// collection
type MongoAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoAdminRepository
func NewMongoAdminRepository(db *Database) *MongoAdminRepository {
	return &MongoAdminRepository{collection: db.Collection(CollectionAdmins)}
}

// FindByID retrieves an admin by identifier
func (r *MongoAdminRepository) FindByID(ctx context.Context, id string) (*identity.Admin, error) {
	var doc models.AdminDocument
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: admin %s", shared.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: finding admin %s: %v", shared.ErrStorage, id, err)
	}
	return doc.ToAdmin(), nil
}

// FindByEmail retrieves an admin by email
func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	var doc models.AdminDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: no admin with that email", shared.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: finding admin by email: %v", shared.ErrStorage, err)
	}
	return doc.ToAdmin(), nil
}
