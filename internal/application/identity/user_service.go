package identity

import (
	"context"

	"github.com/shop/backend/internal/domain/identity"
)

// UserService handles profile reads and updates
type UserService struct {
	users  identity.UserRepository
	admins identity.AdminRepository
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, admins identity.AdminRepository) *UserService {
	return &UserService{
		users:  users,
		admins: admins,
	}
}

// GetByID retrieves a user profile; the password hash never leaves the
// service
func (s *UserService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Update overwrites the mutable profile fields of a user
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.UpdateProfile(req.Name, req.Phone, req.Img, req.Address, req.DOB, req.Subscriber)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetAdminByID retrieves the public profile of a back-office account
func (s *UserService) GetAdminByID(ctx context.Context, id string) (*AdminResponse, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAdminResponse(admin), nil
}
