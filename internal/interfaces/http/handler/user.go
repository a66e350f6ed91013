package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	identityapp "github.com/shop/backend/internal/application/identity"
	"github.com/shop/backend/internal/domain/identity"
)

// UserHandler handles user and admin profile endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a profile update request. Absent fields
// are left unchanged.
type UpdateUserRequest struct {
	Name       string            `json:"name" binding:"omitempty,max=100"`
	Phone      string            `json:"phone"`
	Img        string            `json:"img"`
	Address    *identity.Address `json:"address"`
	DOB        *time.Time        `json:"dob"`
	Subscriber *bool             `json:"subscriber"`
}

// Get returns a user profile
func (h *UserHandler) Get(c *gin.Context) {
	result, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Update overwrites the mutable profile fields of a user
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.userService.Update(c.Request.Context(), c.Param("id"), identityapp.UpdateUserRequest{
		Name:       req.Name,
		Phone:      req.Phone,
		Img:        req.Img,
		Address:    req.Address,
		DOB:        req.DOB,
		Subscriber: req.Subscriber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetAdmin returns the public profile of a back-office account
func (h *UserHandler) GetAdmin(c *gin.Context) {
	result, err := h.userService.GetAdminByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
