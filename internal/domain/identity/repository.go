package identity

import "context"

// UserRepository defines the interface for shopper account persistence
type UserRepository interface {
	// FindByID finds a user by identifier.
	// Returns shared.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail finds a user by email address.
	// Returns shared.ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindGreatestID returns the numerically greatest user identifier,
	// or "" when no user exists.
	FindGreatestID(ctx context.Context) (string, error)

	// Insert creates a new user document.
	// Returns shared.ErrAlreadyExists on an identifier or email conflict.
	Insert(ctx context.Context, u *User) error

	// Update overwrites the profile fields of an existing user.
	// Returns shared.ErrNotFound when absent.
	Update(ctx context.Context, u *User) error
}

// AdminRepository defines the interface for back-office account lookup
type AdminRepository interface {
	// FindByID finds an admin by identifier.
	// Returns shared.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*Admin, error)

	// FindByEmail finds an admin by email address.
	// Returns shared.ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}
