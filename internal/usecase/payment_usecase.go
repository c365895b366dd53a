package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/techcare/pro360-api/internal/converter"
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/domain/repository"
	"github.com/techcare/pro360-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrPaymentAlreadyCompleted = errors.New("payment already completed for this booking")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrInvalidStatusTransition = errors.New("payment status transition not allowed")
	ErrInvalidRefundAmount     = errors.New("refund amount must be between zero and the payment amount")
	ErrPaymentOrderMismatch    = errors.New("payment does not belong to this gateway order")
	ErrInvalidSignature        = service.ErrInvalidSignature
	ErrGatewayNotConfigured    = service.ErrGatewayNotConfigured
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, req *dto.CreatePaymentOrderRequest) (*dto.CreatePaymentOrderResponse, error)
	VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.PaymentDetailResponse, error)
	GetAllPayments(ctx context.Context) ([]dto.PaymentResponse, error)
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*dto.PaymentDetailResponse, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentDetailResponse, error)
}

type paymentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	paymentRepo  repository.PaymentRepository
	bookingRepo  repository.BookingRepository
	gateway      service.PaymentGateway
	auditService service.AuditService
	events       service.EventPublisher
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	gateway service.PaymentGateway,
	auditService service.AuditService,
	events service.EventPublisher,
) PaymentUsecase {
	return &paymentUsecase{
		db:           db,
		log:          log,
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		auditService: auditService,
		events:       events,
	}
}

// CreateOrder opens a checkout for a booking. With a gateway the payment moves to
// processing under a new gateway order; without one a pending cash record is kept.
// An open (pending or processing) payment for the booking is reused.
func (u *paymentUsecase) CreateOrder(ctx context.Context, req *dto.CreatePaymentOrderRequest) (*dto.CreatePaymentOrderResponse, error) {
	if req.Amount == nil {
		return nil, ErrInvalidAmount
	}
	// Amounts are stored to the paisa; anything that rounds to zero is rejected.
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	completed, err := u.paymentRepo.ExistsCompletedForBooking(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to check completed payments: %+v", err)
		return nil, err
	}
	if completed {
		return nil, ErrPaymentAlreadyCompleted
	}

	existing, err := u.paymentRepo.FindLatestByBookingID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if existing != nil && !existing.IsOpen() {
		existing = nil
	}

	if !u.gateway.Enabled() {
		// processing -> pending is not a valid transition; start a new record instead.
		if existing != nil && existing.Status != entity.PaymentStatusPending {
			existing = nil
		}
		payment, err := u.savePayment(db, existing, &entity.Payment{
			BookingID:     bookingID,
			Amount:        amount,
			PaymentMethod: entity.PaymentMethodCash,
			Status:        entity.PaymentStatusPending,
		}, map[string]interface{}{
			"amount": amount,
			"status": entity.PaymentStatusPending,
		})
		if err != nil {
			return nil, err
		}

		return &dto.CreatePaymentOrderResponse{
			PaymentID:     payment.ID,
			Amount:        amount,
			PaymentMethod: string(entity.PaymentMethodCash),
			Manual:        true,
		}, nil
	}

	order, err := u.gateway.CreateOrder(ctx, service.GatewayOrderRequest{
		BookingID: bookingID,
		Amount:    amount,
	})
	if err != nil {
		u.log.Warnf("Failed to create gateway order: %+v", err)
		return nil, err
	}

	payment, err := u.savePayment(db, existing, &entity.Payment{
		BookingID:      bookingID,
		Amount:         amount,
		PaymentMethod:  entity.PaymentMethodOnline,
		Status:         entity.PaymentStatusProcessing,
		GatewayOrderID: order.ID,
	}, map[string]interface{}{
		"amount":           amount,
		"payment_method":   entity.PaymentMethodOnline,
		"status":           entity.PaymentStatusProcessing,
		"gateway_order_id": order.ID,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreatePaymentOrderResponse{
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Key:       u.gateway.KeyID(),
		PaymentID: payment.ID,
	}, nil
}

// savePayment updates the open payment when there is one, otherwise creates fresh.
func (u *paymentUsecase) savePayment(db *gorm.DB, existing, fresh *entity.Payment, fields map[string]interface{}) (*entity.Payment, error) {
	if existing == nil {
		if err := u.paymentRepo.Create(db, fresh); err != nil {
			u.log.Warnf("Failed to create payment: %+v", err)
			return nil, err
		}
		return fresh, nil
	}

	if err := u.paymentRepo.UpdateFields(db, existing.ID, fields); err != nil {
		u.log.Warnf("Failed to update payment: %+v", err)
		return nil, err
	}
	return existing, nil
}

// VerifyPayment checks the gateway signature over "orderId|paymentId" and only then
// marks the local payment completed.
func (u *paymentUsecase) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.PaymentDetailResponse, error) {
	if !u.gateway.Enabled() {
		return nil, ErrGatewayNotConfigured
	}

	if err := u.gateway.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature); err != nil {
		u.log.WithField("order_id", req.GatewayOrderID).Warn("Payment signature mismatch")
		return nil, ErrInvalidSignature
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := u.findForVerification(tx, req)
	if err != nil {
		return nil, err
	}

	if payment.GatewayOrderID != req.GatewayOrderID {
		return nil, ErrPaymentOrderMismatch
	}

	// A repeated callback for the same gateway payment is a no-op.
	alreadyVerified := payment.IsCompleted() && payment.GatewayPaymentID == req.GatewayPaymentID
	if !alreadyVerified {
		if !payment.CanTransitionTo(entity.PaymentStatusCompleted) {
			return nil, ErrInvalidStatusTransition
		}

		now := time.Now().UTC()
		if err := u.paymentRepo.UpdateFields(tx, payment.ID, map[string]interface{}{
			"status":             entity.PaymentStatusCompleted,
			"paid_at":            now,
			"gateway_payment_id": req.GatewayPaymentID,
			"gateway_signature":  req.Signature,
			"transaction_id":     req.GatewayPaymentID,
		}); err != nil {
			u.log.Warnf("Failed to complete payment: %+v", err)
			return nil, err
		}

		if _, err := u.bookingRepo.UpdateFields(tx, payment.BookingID, map[string]interface{}{
			"payment_method": entity.PaymentMethodOnline,
		}); err != nil {
			u.log.Warnf("Failed to update booking payment method: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response, err := u.GetPayment(ctx, payment.ID)
	if err != nil {
		return nil, err
	}

	if !alreadyVerified {
		u.log.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"booking_id": payment.BookingID,
		}).Info("Payment verified")
		u.events.Publish(ctx, service.EventPaymentCompleted, response)
	}

	return response, nil
}

func (u *paymentUsecase) findForVerification(db *gorm.DB, req *dto.VerifyPaymentRequest) (*entity.Payment, error) {
	var (
		payment *entity.Payment
		err     error
	)

	if req.PaymentID != "" {
		paymentID, parseErr := uuid.Parse(req.PaymentID)
		if parseErr != nil {
			return nil, ErrPaymentNotFound
		}
		payment, err = u.paymentRepo.FindByID(db, paymentID)
	} else {
		payment, err = u.paymentRepo.FindByGatewayOrderID(db, req.GatewayOrderID)
	}
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return payment, nil
}

func (u *paymentUsecase) GetAllPayments(ctx context.Context) ([]dto.PaymentResponse, error) {
	payments, err := u.paymentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all payments: %+v", err)
		return nil, err
	}

	return converter.PaymentsToResponses(payments), nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, paymentID uuid.UUID) (*dto.PaymentDetailResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), paymentID)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToDetailResponse(payment), nil
}

// UpdateStatus is the admin override for a payment's state. Transitions follow the
// payment state machine; completed stamps paidAt once and refunded records the refund.
func (u *paymentUsecase) UpdateStatus(ctx context.Context, paymentID uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentDetailResponse, error) {
	status := entity.PaymentStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := u.paymentRepo.FindByID(tx, paymentID)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if !payment.CanTransitionTo(status) {
		return nil, ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{
		"status": status,
	}

	if status == entity.PaymentStatusCompleted && payment.PaidAt == nil {
		fields["paid_at"] = now
	}

	if status == entity.PaymentStatusRefunded && payment.Status != entity.PaymentStatusRefunded {
		refund := decimal.Zero
		if req.RefundAmount != nil {
			refund = req.RefundAmount.Round(2)
		}
		if refund.IsNegative() || refund.GreaterThan(payment.Amount) {
			return nil, ErrInvalidRefundAmount
		}
		fields["refunded_at"] = now
		fields["refund_amount"] = decimal.NullDecimal{Decimal: refund, Valid: true}
	}

	if req.Notes != nil {
		if notes := strings.TrimSpace(*req.Notes); notes != "" {
			fields["notes"] = notes
		}
	}

	if err := u.paymentRepo.UpdateFields(tx, paymentID, fields); err != nil {
		u.log.Warnf("Failed to update payment status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionPaymentStatus, "payment", paymentID.String(),
		map[string]interface{}{"status": payment.Status},
		map[string]interface{}{"status": status},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetPayment(ctx, paymentID)
}
