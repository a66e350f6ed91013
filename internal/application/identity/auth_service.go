package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shop/backend/internal/domain/identity"
	"github.com/shop/backend/internal/domain/shared"
)

// maxIDAllocAttempts bounds the insert-with-retry loop of the user
// identifier allocator
const maxIDAllocAttempts = 5

// ErrInvalidCredentials is returned for a wrong email/password pair.
// The message never reveals which half failed.
var ErrInvalidCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")

// TokenIssuer issues opaque bearer credentials carrying the subject id
// and role
type TokenIssuer interface {
	Issue(userID string, role identity.Role) (token string, expiresAt time.Time, err error)
}

// AuthService handles registration and credential checks
type AuthService struct {
	users  identity.UserRepository
	admins identity.AdminRepository
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.UserRepository, admins identity.AdminRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		admins: admins,
		tokens: tokens,
	}
}

// Register creates a shopper account with a freshly allocated
// sequential identifier and returns a bearer token for it
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", shared.ErrAlreadyExists)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := s.createUser(ctx, req)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:     token,
		Role:      user.Role,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}, nil
}

// Login checks credentials against shopper accounts first, then
// back-office accounts, and returns a bearer token on success
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		if !user.CheckPassword(req.Password) {
			return nil, ErrInvalidCredentials
		}
		return s.issue(user.ID, user.Role)
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !admin.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(admin.ID, admin.Role)
}

func (s *AuthService) issue(subjectID string, role identity.Role) (*AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(subjectID, role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:     token,
		Role:      role,
		UserID:    subjectID,
		ExpiresAt: expiresAt,
	}, nil
}

// createUser allocates the next user identifier and inserts the
// account, retrying on a uniqueness conflict from a concurrent
// registration.
func (s *AuthService) createUser(ctx context.Context, req RegisterRequest) (*identity.User, error) {
	var lastErr error
	for attempt := 0; attempt < maxIDAllocAttempts; attempt++ {
		greatest, err := s.users.FindGreatestID(ctx)
		if err != nil {
			return nil, err
		}
		id, err := identity.IDs.Next(greatest)
		if err != nil {
			return nil, err
		}

		user, err := identity.NewUser(id, req.Name, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		user.UpdateProfile("", req.Phone, "", req.Address, req.DOB, &req.Subscriber)

		if err := s.users.Insert(ctx, user); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return user, nil
	}
	return nil, fmt.Errorf("allocating user id after %d attempts: %w", maxIDAllocAttempts, lastErr)
}
