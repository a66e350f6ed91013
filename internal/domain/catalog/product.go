package catalog

import (
	"fmt"
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry shoppers add to their carts
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Colors      []string        `json:"colors,omitempty"`
	Img         string          `json:"img,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewProduct creates a product. Price must not be negative.
func NewProduct(id, name string, price decimal.Decimal) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", shared.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", shared.ErrInvalidInput)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", shared.ErrInvalidInput)
	}

	now := time.Now()
	return &Product{
		ID:        id,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
