package identity

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
	"golang.org/x/crypto/bcrypt"
)

// IDs is the user identifier sequence: "U" plus a zero-padded number
var IDs = valueobject.NewSeqCode("U", 5)

// Password cost for bcrypt
const bcryptCost = 12

// Role represents the access level of an account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Address is an embedded postal address
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// User represents a registered shopper account. The password hash never
// leaves the domain layer; JSON serialization excludes it.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	Address      *Address   `json:"address,omitempty"`
	DOB          *time.Time `json:"dob,omitempty"`
	Subscriber   bool       `json:"subscriber"`
	Role         Role       `json:"role"`
	Img          string     `json:"img,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewUser creates a user with the given allocated identifier and a
// bcrypt-hashed password
func NewUser(id, name, email, password string) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", shared.ErrInvalidInput)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UpdateProfile overwrites the mutable profile fields. The password is
// deliberately not updatable through this path.
func (u *User) UpdateProfile(name, phone, img string, address *Address, dob *time.Time, subscriber *bool) {
	if name != "" {
		u.Name = name
	}
	if phone != "" {
		u.Phone = phone
	}
	if img != "" {
		u.Img = img
	}
	if address != nil {
		u.Address = address
	}
	if dob != nil {
		u.DOB = dob
	}
	if subscriber != nil {
		u.Subscriber = *subscriber
	}
	u.UpdatedAt = time.Now()
}

// Admin represents a back-office account, stored separately from
// shopper accounts
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Img          string `json:"img,omitempty"`
}

// CheckPassword verifies a plaintext password against the stored hash
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", fmt.Errorf("%w: password must be at least 8 characters", shared.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
