package identity

import (
	"time"

	"github.com/shop/backend/internal/domain/identity"
)

// RegisterRequest carries the signup input
type RegisterRequest struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Address    *identity.Address
	DOB        *time.Time
	Subscriber bool
}

// LoginRequest carries the credential check input
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResponse is returned after a successful login or registration
type AuthResponse struct {
	Token     string        `json:"token"`
	Role      identity.Role `json:"role"`
	UserID    string        `json:"userId"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// UpdateUserRequest carries the profile update input. Nil or empty
// fields are left untouched; the password is not updatable here.
type UpdateUserRequest struct {
	Name       string
	Phone      string
	Img        string
	Address    *identity.Address
	DOB        *time.Time
	Subscriber *bool
}

// UserResponse is the user shape returned to the interface layer. The
// password hash is never part of it.
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Address    *identity.Address `json:"address,omitempty"`
	DOB        *time.Time        `json:"dob,omitempty"`
	Subscriber bool              `json:"subscriber"`
	Role       identity.Role     `json:"role"`
	Img        string            `json:"img,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// AdminResponse is the public admin profile shape
type AdminResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  identity.Role `json:"role"`
	Img   string        `json:"img,omitempty"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Address:    u.Address,
		DOB:        u.DOB,
		Subscriber: u.Subscriber,
		Role:       u.Role,
		Img:        u.Img,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// ToAdminResponse converts a domain admin to its public profile DTO
func ToAdminResponse(a *identity.Admin) *AdminResponse {
	return &AdminResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
		Img:   a.Img,
	}
}
