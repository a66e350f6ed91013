package cart

import (
	"context"
	"time"
)

// Store defines the document-collection operations the cart service
// depends on. Implementations map these to the underlying store; the
// service never sees driver types.
type Store interface {
	// FindByUserID finds the cart owned by a user.
	// Returns ErrCartNotFound when the user has no cart.
	FindByUserID(ctx context.Context, userID string) (*Cart, error)

	// FindGreatestID returns the numerically greatest cart identifier
	// in the store, or "" when no cart exists. A stored identifier that
	// does not parse as a CT-sequence code is a data-integrity error.
	FindGreatestID(ctx context.Context) (string, error)

	// Insert creates a new cart document.
	// Returns shared.ErrAlreadyExists when the identifier is taken.
	Insert(ctx context.Context, c *Cart) error

	// ReplaceItems overwrites the item collection and timestamp of the
	// cart keyed by userID as one write.
	// Returns ErrCartNotFound when the cart does not exist.
	ReplaceItems(ctx context.Context, userID string, items []Item, updatedAt time.Time) error
}
