package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	billingapp "github.com/shop/backend/internal/application/billing"
)

// PaymentHandler handles payment record endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *billingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *billingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPaymentRequest represents a request to record a payment
type RecordPaymentRequest struct {
	ID            string          `json:"id" binding:"required"`
	OrderID       string          `json:"orderId" binding:"required"`
	Method        string          `json:"paymentMethod" binding:"required"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// Record stores a payment record
func (h *PaymentHandler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.paymentService.Record(c.Request.Context(), billingapp.RecordPaymentRequest{
		ID:            req.ID,
		OrderID:       req.OrderID,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List returns all payment records
func (h *PaymentHandler) List(c *gin.Context) {
	result, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
