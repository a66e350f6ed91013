package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/shop/backend/internal/application/cart"
)

// CartHandler handles cart-related API endpoints
type CartHandler struct {
	BaseHandler
	cartService *cartapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItemRequest represents a request to add a product to a cart
type AddItemRequest struct {
	UserID    string `json:"userId" binding:"required,seqcode"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Color     string `json:"color"`
}

// SetQuantityRequest represents a request to overwrite a line quantity
type SetQuantityRequest struct {
	UserID    string `json:"userId" binding:"required,seqcode"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// RemoveItemRequest represents a request to drop a product from a cart
type RemoveItemRequest struct {
	UserID    string `json:"userId" binding:"required,seqcode"`
	ProductID string `json:"productId" binding:"required"`
}

// Get returns the cart of a user. A user without a stored cart gets an
// empty cart, not an error.
func (h *CartHandler) Get(c *gin.Context) {
	result, err := h.cartService.GetCart(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddItem merges a product into the caller's cart, creating the cart
// on first use
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.cartService.AddItem(c.Request.Context(), cartapp.AddItemRequest{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Color:     req.Color,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SetQuantity overwrites the quantity of an existing cart line
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.cartService.SetQuantity(c.Request.Context(), cartapp.SetQuantityRequest{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveItem drops every variant of a product from the cart. Removing
// a product that is not in the cart succeeds.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), req.UserID, req.ProductID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, nil)
}

// RegisterRoutes registers cart routes. Reads are public; mutations
// require authentication.
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("/cart/:userId", h.Get)

	protected := rg.Group("", authRequired)
	protected.POST("/carts", h.AddItem)
	protected.PUT("/cart/update", h.SetQuantity)
	protected.DELETE("/cart/remove", h.RemoveItem)
}
