package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop/backend/internal/domain/billing"
	"github.com/shop/backend/internal/domain/shared"
)

// PaymentDocument is the stored shape of a payment record
type PaymentDocument struct {
	ID            string    `bson:"id"`
	OrderID       string    `bson:"orderId"`
	Method        string    `bson:"paymentMethod"`
	Status        string    `bson:"paymentStatus"`
	TransactionID string    `bson:"transactionId,omitempty"`
	Amount        string    `bson:"amount"`
	CreatedAt     time.Time `bson:"createdAt"`
}

// FromPayment converts a domain payment to its stored shape
func FromPayment(p *billing.Payment) *PaymentDocument {
	return &PaymentDocument{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Method:        p.Method,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		Amount:        p.Amount.String(),
		CreatedAt:     p.CreatedAt,
	}
}

// ToPayment converts a stored payment back to the domain shape. An
// amount that does not parse as a decimal is a data-integrity error.
func (d *PaymentDocument) ToPayment() (*billing.Payment, error) {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: payment %s has malformed amount %q", shared.ErrDataIntegrity, d.ID, d.Amount)
	}
	return &billing.Payment{
		ID:            d.ID,
		OrderID:       d.OrderID,
		Method:        d.Method,
		Status:        billing.PaymentStatus(d.Status),
		TransactionID: d.TransactionID,
		Amount:        amount,
		CreatedAt:     d.CreatedAt,
	}, nil
}
