package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/shared"
)

// maxIDAllocAttempts bounds the insert-with-retry loop of the cart
// identifier allocator. Each attempt re-reads the greatest stored id,
// so a conflict only recurs while another creation wins the same slot.
const maxIDAllocAttempts = 5

// Service handles cart business operations. All mutations for one user
// are serialized through a per-user lock before the read-modify-write
// against the store, closing the lost-update race between concurrent
// requests.
type Service struct {
	store cart.Store
	locks *keyedMutex
}

// NewService creates a new cart Service
func NewService(store cart.Store) *Service {
	return &Service{
		store: store,
		locks: newKeyedMutex(),
	}
}

// GetCart returns the stored cart for the user, or a synthesized empty
// cart when none exists. A missing cart is an empty state, not an
// error.
func (s *Service) GetCart(ctx context.Context, userID string) (*CartResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", shared.ErrInvalidInput)
	}

	c, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			return ToCartResponse(cart.NewEmpty(userID)), nil
		}
		return nil, err
	}
	return ToCartResponse(c), nil
}

// AddItem merges the item into the user's cart, creating the cart with
// a freshly allocated identifier when none exists. Matching
// (productId, color) lines accumulate quantity; they are never
// overwritten.
func (s *Service) AddItem(ctx context.Context, req AddItemRequest) (*CartResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", shared.ErrInvalidInput)
	}
	item, err := cart.NewItem(req.ProductID, req.Quantity, req.Color)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	c, err := s.store.FindByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			return s.createCart(ctx, req.UserID, item)
		}
		return nil, err
	}

	c.Add(item)
	if err := s.store.ReplaceItems(ctx, req.UserID, c.Items, c.UpdatedAt); err != nil {
		return nil, err
	}
	return ToCartResponse(c), nil
}

// SetQuantity overwrites the quantity of an existing cart line.
// Fails with ErrCartNotFound or ErrItemNotFound; a non-positive
// quantity is rejected rather than coerced.
func (s *Service) SetQuantity(ctx context.Context, req SetQuantityRequest) (*CartResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", shared.ErrInvalidInput)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1, got %d", shared.ErrInvalidInput, req.Quantity)
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	c, err := s.store.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if err := c.SetQuantity(req.ProductID, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceItems(ctx, req.UserID, c.Items, c.UpdatedAt); err != nil {
		return nil, err
	}
	return ToCartResponse(c), nil
}

// RemoveItem drops every line with the productId from the user's cart,
// across all color variants. Fails with ErrCartNotFound when the user
// has no cart; removing a product that is not in the cart is an
// idempotent no-op.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", shared.ErrInvalidInput)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	c, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	c.Remove(productID)
	return s.store.ReplaceItems(ctx, userID, c.Items, c.UpdatedAt)
}

// createCart allocates the next cart identifier and inserts a cart
// holding the single item. The identifier slot is claimed by the
// insert against the store's unique index; a duplicate-key conflict
// from a concurrent creation re-reads and retries.
func (s *Service) createCart(ctx context.Context, userID string, item cart.Item) (*CartResponse, error) {
	var lastErr error
	for attempt := 0; attempt < maxIDAllocAttempts; attempt++ {
		greatest, err := s.store.FindGreatestID(ctx)
		if err != nil {
			return nil, err
		}
		id, err := cart.IDs.Next(greatest)
		if err != nil {
			return nil, err
		}

		c := cart.New(id, userID, item)
		if err := s.store.Insert(ctx, c); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return ToCartResponse(c), nil
	}
	return nil, fmt.Errorf("allocating cart id after %d attempts: %w", maxIDAllocAttempts, lastErr)
}
