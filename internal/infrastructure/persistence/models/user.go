package models

import (
	"time"

	"github.com/shop/backend/internal/domain/identity"
)

// UserDocument is the stored shape of a shopper account. The seq field
// mirrors the sequence number inside the id for index-sorted lookup of
// the greatest identifier.
type UserDocument struct {
	ID           string           `bson:"id"`
	Seq          uint64           `bson:"seq"`
	Name         string           `bson:"name"`
	Email        string           `bson:"email"`
	PasswordHash string           `bson:"passwordHash"`
	Phone        string           `bson:"phone,omitempty"`
	Address      *AddressDocument `bson:"address,omitempty"`
	DOB          *time.Time       `bson:"dob,omitempty"`
	Subscriber   bool             `bson:"subscriber"`
	Role         string           `bson:"role"`
	Img          string           `bson:"img,omitempty"`
	CreatedAt    time.Time        `bson:"createdAt"`
	UpdatedAt    time.Time        `bson:"updatedAt"`
}

// AddressDocument is the stored shape of a shipping address
type AddressDocument struct {
	Street     string `bson:"street,omitempty"`
	City       string `bson:"city,omitempty"`
	Country    string `bson:"country,omitempty"`
	PostalCode string `bson:"postalCode,omitempty"`
}

// AdminDocument is the stored shape of a back-office account
type AdminDocument struct {
	ID           string `bson:"id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
	Role         string `bson:"role"`
	Img          string `bson:"img,omitempty"`
}

// FromUser converts a domain user to its stored shape
func FromUser(u *identity.User) (*UserDocument, error) {
	seq, err := identity.IDs.Parse(u.ID)
	if err != nil {
		return nil, err
	}

	doc := &UserDocument{
		ID:           u.ID,
		Seq:          seq,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		DOB:          u.DOB,
		Subscriber:   u.Subscriber,
		Role:         string(u.Role),
		Img:          u.Img,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.Address != nil {
		doc.Address = &AddressDocument{
			Street:     u.Address.Street,
			City:       u.Address.City,
			Country:    u.Address.Country,
			PostalCode: u.Address.PostalCode,
		}
	}
	return doc, nil
}

// ToUser converts a stored user back to the domain shape
func (d *UserDocument) ToUser() *identity.User {
	user := &identity.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		DOB:          d.DOB,
		Subscriber:   d.Subscriber,
		Role:         identity.Role(d.Role),
		Img:          d.Img,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.Address != nil {
		user.Address = &identity.Address{
			Street:     d.Address.Street,
			City:       d.Address.City,
			Country:    d.Address.Country,
			PostalCode: d.Address.PostalCode,
		}
	}
	return user
}

// ToAdmin converts a stored admin back to the domain shape
func (d *AdminDocument) ToAdmin() *identity.Admin {
	return &identity.Admin{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         identity.Role(d.Role),
		Img:          d.Img,
	}
}
