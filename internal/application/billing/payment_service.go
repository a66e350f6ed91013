package billing

import (
	"context"

	"github.com/shop/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest carries the payment record input
type RecordPaymentRequest struct {
	ID            string
	OrderID       string
	Method        string
	TransactionID string
	Amount        decimal.Decimal
}

// PaymentService handles payment record operations
type PaymentService struct {
	payments billing.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(payments billing.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

// Record stores a payment record. A transaction reference marks it
// completed; without one it stays pending.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*billing.Payment, error) {
	payment, err := billing.NewPayment(req.ID, req.OrderID, req.Method, req.Amount)
	if err != nil {
		return nil, err
	}
	if req.TransactionID != "" {
		payment.Complete(req.TransactionID)
	}

	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// List returns all payment records
func (s *PaymentService) List(ctx context.Context) ([]billing.Payment, error) {
	payments, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []billing.Payment{}
	}
	return payments, nil
}
