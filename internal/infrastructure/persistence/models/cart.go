package models

import (
	"time"

	"github.com/shop/backend/internal/domain/cart"
)

// CartDocument is the stored shape of a cart. The numeric seq field
// mirrors the sequence number inside the id so the greatest identifier
// can be found with an index sort instead of a string compare, which
// breaks when the zero-padding width expands.
type CartDocument struct {
	ID        string             `bson:"id"`
	Seq       uint64             `bson:"seq"`
	UserID    string             `bson:"userId"`
	Items     []CartItemDocument `bson:"items"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// CartItemDocument is a single line inside a stored cart
type CartItemDocument struct {
	ProductID string `bson:"productId"`
	Quantity  int    `bson:"quantity"`
	Color     string `bson:"color,omitempty"`
}

// FromCart converts a domain cart to its stored shape
func FromCart(c *cart.Cart) (*CartDocument, error) {
	seq, err := cart.IDs.Parse(c.ID)
	if err != nil {
		return nil, err
	}

	items := make([]CartItemDocument, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemDocument(item))
	}

	return &CartDocument{
		ID:        c.ID,
		Seq:       seq,
		UserID:    c.UserID,
		Items:     items,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

// FromCartItems converts domain cart lines to their stored shape
func FromCartItems(items []cart.Item) []CartItemDocument {
	docs := make([]CartItemDocument, 0, len(items))
	for _, item := range items {
		docs = append(docs, CartItemDocument(item))
	}
	return docs
}

// ToCart converts a stored cart back to the domain shape
func (d *CartDocument) ToCart() *cart.Cart {
	items := make([]cart.Item, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, cart.Item(item))
	}
	return &cart.Cart{
		ID:        d.ID,
		UserID:    d.UserID,
		Items:     items,
		UpdatedAt: d.UpdatedAt,
	}
}
