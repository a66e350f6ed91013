package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a payment record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is a record of a settled or attempted payment for an order
type Payment struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"orderId"`
	Method        string          `json:"paymentMethod"`
	Status        PaymentStatus   `json:"paymentStatus"`
	TransactionID string          `json:"transactionId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewPayment creates a payment record. Amount must be positive.
func NewPayment(id, orderID, method string, amount decimal.Decimal) (*Payment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: payment id is required", shared.ErrInvalidInput)
	}
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", shared.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", shared.ErrInvalidInput)
	}

	return &Payment{
		ID:        id,
		OrderID:   orderID,
		Method:    method,
		Status:    PaymentStatusPending,
		Amount:    amount,
		CreatedAt: time.Now(),
	}, nil
}

// Complete marks the payment as settled with the processor transaction
// reference
func (p *Payment) Complete(transactionID string) {
	p.Status = PaymentStatusCompleted
	p.TransactionID = transactionID
}

// PaymentRepository defines the interface for payment record persistence
type PaymentRepository interface {
	// FindAll returns all payment records.
	FindAll(ctx context.Context) ([]Payment, error)

	// Insert creates a new payment record.
	// Returns shared.ErrAlreadyExists on an identifier conflict.
	Insert(ctx context.Context, p *Payment) error
}
