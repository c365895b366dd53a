package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentOrderRequest struct {
	BookingID string           `json:"bookingId" validate:"required,uuid"`
	Amount    *decimal.Decimal `json:"amount"`
}

// VerifyPaymentRequest carries the gateway checkout callback fields.
type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id" validate:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature        string `json:"razorpay_signature" validate:"required"`
	PaymentID        string `json:"paymentId" validate:"omitempty,uuid"`
}

type UpdatePaymentStatusRequest struct {
	Status       string           `json:"status" validate:"required,oneof=pending processing completed failed refunded"`
	Notes        *string          `json:"notes"`
	RefundAmount *decimal.Decimal `json:"refundAmount"`
}

// Response DTOs

// CreatePaymentOrderResponse is the checkout payload. Without a gateway only
// PaymentID, Amount and PaymentMethod are set.
type CreatePaymentOrderResponse struct {
	OrderID       string          `json:"orderId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	Key           string          `json:"key,omitempty"`
	PaymentID     uuid.UUID       `json:"paymentId"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Manual        bool            `json:"-"`
}

type PaymentBookingSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	ServiceType string    `json:"serviceType"`
	Status      string    `json:"status"`
}

type PaymentResponse struct {
	ID               uuid.UUID              `json:"id"`
	BookingID        uuid.UUID              `json:"bookingId"`
	Booking          *PaymentBookingSummary `json:"booking,omitempty"`
	Amount           decimal.Decimal        `json:"amount"`
	PaymentMethod    string                 `json:"paymentMethod"`
	Status           string                 `json:"status"`
	GatewayOrderID   string                 `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string                 `json:"gatewayPaymentId,omitempty"`
	TransactionID    string                 `json:"transactionId,omitempty"`
	PaidAt           *time.Time             `json:"paidAt,omitempty"`
	RefundedAt       *time.Time             `json:"refundedAt,omitempty"`
	RefundAmount     *decimal.Decimal       `json:"refundAmount,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// PaymentDetailResponse replaces the booking summary with the full booking.
type PaymentDetailResponse struct {
	PaymentResponse
	Booking *BookingResponse `json:"booking,omitempty"`
}
