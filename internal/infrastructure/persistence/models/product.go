package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/shared"
)

// ProductDocument is the stored shape of a catalog entry. Prices are
// stored as decimal strings; floats would drift.
type ProductDocument struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	Price       string    `bson:"price"`
	Colors      []string  `bson:"colors,omitempty"`
	Img         string    `bson:"img,omitempty"`
	Stock       int       `bson:"stock"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

// FromProduct converts a domain product to its stored shape
func FromProduct(p *catalog.Product) *ProductDocument {
	return &ProductDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Colors:      p.Colors,
		Img:         p.Img,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProduct converts a stored product back to the domain shape. A price
// that does not parse as a decimal is a data-integrity error.
func (d *ProductDocument) ToProduct() (*catalog.Product, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s has malformed price %q", shared.ErrDataIntegrity, d.ID, d.Price)
	}
	return &catalog.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		Colors:      d.Colors,
		Img:         d.Img,
		Stock:       d.Stock,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}
