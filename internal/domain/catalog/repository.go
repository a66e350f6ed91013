package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by identifier.
	// Returns shared.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll returns the full catalog.
	FindAll(ctx context.Context) ([]Product, error)

	// Insert creates a new product document.
	// Returns shared.ErrAlreadyExists on an identifier conflict.
	Insert(ctx context.Context, p *Product) error
}
