package cart

import (
	"fmt"
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
)

// IDs is the cart identifier sequence: "CT" plus a zero-padded number,
// at least five digits wide
var IDs = valueobject.NewSeqCode("CT", 5)

// Cart-specific domain errors. Both surface as 404 at the HTTP boundary
// but stay distinct so logs can tell a missing cart from a missing item.
var (
	ErrCartNotFound = shared.NewDomainError("CART_NOT_FOUND", "Cart not found")
	ErrItemNotFound = shared.NewDomainError("ITEM_NOT_FOUND", "Product not in cart")
)

// Item is a line in a cart. Two items are the same line only when both
// the product and the color variant match; merging sums quantities.
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
}

// NewItem validates and builds a cart line. Quantity must be a positive
// integer; zero or negative quantities are rejected, not coerced.
func NewItem(productID string, quantity int, color string) (Item, error) {
	if productID == "" {
		return Item{}, fmt.Errorf("%w: productId is required", shared.ErrInvalidInput)
	}
	if quantity < 1 {
		return Item{}, fmt.Errorf("%w: quantity must be at least 1, got %d", shared.ErrInvalidInput, quantity)
	}
	return Item{ProductID: productID, Quantity: quantity, Color: color}, nil
}

// matches reports whether the item occupies the same line as the given
// (productId, color) pair
func (i Item) matches(productID, color string) bool {
	return i.ProductID == productID && i.Color == color
}

// Cart is the per-user collection of selected products awaiting
// checkout. It is mutated only through these methods and persisted as a
// single document.
type Cart struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a cart for a user with an allocated identifier and a
// first item
func New(id, userID string, item Item) *Cart {
	return &Cart{
		ID:        id,
		UserID:    userID,
		Items:     []Item{item},
		UpdatedAt: time.Now(),
	}
}

// NewEmpty synthesizes the empty cart returned when a user has no
// stored cart. It carries no identifier; one is allocated only when the
// first item is added.
func NewEmpty(userID string) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []Item{},
	}
}

// Add merges the item into the cart: an existing (productId, color)
// line accumulates the quantity, otherwise the item is appended.
// Quantities never overwrite on this path.
func (c *Cart) Add(item Item) {
	for idx := range c.Items {
		if c.Items[idx].matches(item.ProductID, item.Color) {
			c.Items[idx].Quantity += item.Quantity
			c.touch()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.touch()
}

// SetQuantity overwrites the quantity of the first line with the given
// productId. Returns ErrItemNotFound when no line matches.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			c.touch()
			return nil
		}
	}
	return fmt.Errorf("%w: product %s", ErrItemNotFound, productID)
}

// Remove drops every line with the given productId, regardless of
// color variant. Removing an absent product is a no-op; the cart is
// touched either way so the write stays a single unconditional replace.
func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.touch()
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
