package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// PaymentStatus represents where a payment is in its lifecycle
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

// pending -> processing -> completed, non-terminal -> failed, completed -> refunded.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:    {PaymentStatusProcessing, PaymentStatusCompleted, PaymentStatusFailed},
	PaymentStatusProcessing: {PaymentStatusCompleted, PaymentStatusFailed},
	PaymentStatusCompleted:  {PaymentStatusRefunded},
	PaymentStatusFailed:     nil,
	PaymentStatusRefunded:   nil,
}

// Payment tracks money collected for a booking, either through the gateway
// or recorded manually by an admin.
type Payment struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"bookingId"`
	Amount           decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod    PaymentMethod       `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	Status           PaymentStatus       `gorm:"type:varchar(20);not null;index" json:"status"`
	GatewayOrderID   string              `gorm:"type:varchar(100);index" json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string              `gorm:"type:varchar(100)" json:"gatewayPaymentId,omitempty"`
	GatewaySignature string              `gorm:"type:varchar(255)" json:"gatewaySignature,omitempty"`
	TransactionID    string              `gorm:"type:varchar(100)" json:"transactionId,omitempty"`
	PaidAt           *time.Time          `json:"paidAt,omitempty"`
	RefundedAt       *time.Time          `json:"refundedAt,omitempty"`
	RefundAmount     decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"refundAmount"`
	Notes            string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time           `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
	return nil
}

// CanTransitionTo reports whether the state machine allows moving to next.
// Re-applying the current status is allowed so admin edits of notes succeed.
func (p *Payment) CanTransitionTo(next PaymentStatus) bool {
	if p.Status == next {
		return next.IsValid()
	}
	for _, allowed := range paymentTransitions[p.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsCompleted checks if the payment has been collected
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// IsOpen reports whether the payment can still be collected.
func (p *Payment) IsOpen() bool {
	return p.Status == PaymentStatusPending || p.Status == PaymentStatusProcessing
}
