package cart

import (
	"time"

	"github.com/shop/backend/internal/domain/cart"
)

// AddItemRequest carries the merge-or-create input
type AddItemRequest struct {
	UserID    string
	ProductID string
	Quantity  int
	Color     string
}

// SetQuantityRequest carries the absolute quantity update input
type SetQuantityRequest struct {
	UserID    string
	ProductID string
	Quantity  int
}

// CartResponse is the cart shape returned to the interface layer
type CartResponse struct {
	ID        string      `json:"id,omitempty"`
	UserID    string      `json:"userId"`
	Items     []cart.Item `json:"items"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ToCartResponse converts a domain cart to a response DTO
func ToCartResponse(c *cart.Cart) *CartResponse {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return &CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     items,
		UpdatedAt: c.UpdatedAt,
	}
}
