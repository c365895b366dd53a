package usecase

import (
	"context"
	"crypto/hmac"
	"fmt"
	"testing"

	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/repository"
	"github.com/techcare/pro360-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testGatewaySecret = "gateway-secret"

type fakeGateway struct {
	orders int
}

func (g *fakeGateway) Enabled() bool { return true }

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

func (g *fakeGateway) CreateOrder(_ context.Context, req service.GatewayOrderRequest) (*service.GatewayOrder, error) {
	g.orders++
	return &service.GatewayOrder{
		ID:       fmt.Sprintf("order_%d", g.orders),
		Amount:   req.Amount,
		Currency: "INR",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) error {
	expected := service.ComputeSignature(testGatewaySecret, orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return service.ErrInvalidSignature
	}
	return nil
}

type paymentFixture struct {
	uc      PaymentUsecase
	db      *gorm.DB
	events  *recordingEvents
	booking *entity.Booking
}

func newPaymentFixture(t *testing.T, gateway service.PaymentGateway) *paymentFixture {
	t.Helper()
	db := newTestDB(t)
	log := quietLogger()
	events := &recordingEvents{}

	booking := &entity.Booking{Name: "Asha", Phone: "1", Address: "a", ServiceType: "Repair", PaymentMethod: "cash"}
	require.NoError(t, db.Create(booking).Error)

	uc := NewPaymentUsecase(db, log, repository.NewPaymentRepository(), repository.NewBookingRepository(), gateway,
		service.NewAuditService(log, repository.NewAuditLogRepository()), events)

	return &paymentFixture{uc: uc, db: db, events: events, booking: booking}
}

func (f *paymentFixture) orderRequest(amount string) *dto.CreatePaymentOrderRequest {
	value := decimal.RequireFromString(amount)
	return &dto.CreatePaymentOrderRequest{BookingID: f.booking.ID.String(), Amount: &value}
}

func (f *paymentFixture) storedPayment(t *testing.T, id uuid.UUID) entity.Payment {
	t.Helper()
	var payment entity.Payment
	require.NoError(t, f.db.First(&payment, "id = ?", id).Error)
	return payment
}

func verifyRequest(orderID, paymentID string, paymentRecord uuid.UUID) *dto.VerifyPaymentRequest {
	return &dto.VerifyPaymentRequest{
		GatewayOrderID:   orderID,
		GatewayPaymentID: paymentID,
		Signature:        service.ComputeSignature(testGatewaySecret, orderID, paymentID),
		PaymentID:        paymentRecord.String(),
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newPaymentFixture(t, &fakeGateway{})

	_, err := f.uc.CreateOrder(context.Background(), f.orderRequest("0"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.uc.CreateOrder(context.Background(), f.orderRequest("-10"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.uc.CreateOrder(context.Background(), f.orderRequest("0.001"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	var count int64
	require.NoError(t, f.db.Model(&entity.Payment{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = f.uc.CreateOrder(context.Background(), &dto.CreatePaymentOrderRequest{BookingID: f.booking.ID.String()})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	amount := decimal.NewFromInt(100)
	_, err = f.uc.CreateOrder(context.Background(), &dto.CreatePaymentOrderRequest{BookingID: uuid.NewString(), Amount: &amount})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateOrder_ManualFallback(t *testing.T) {
	f := newPaymentFixture(t, service.NewManualGateway())

	first, err := f.uc.CreateOrder(context.Background(), f.orderRequest("499.50"))
	require.NoError(t, err)
	assert.True(t, first.Manual)
	assert.Empty(t, first.OrderID)
	assert.Equal(t, "cash", first.PaymentMethod)

	stored := f.storedPayment(t, first.PaymentID)
	assert.Equal(t, entity.PaymentStatusPending, stored.Status)
	assert.Equal(t, entity.PaymentMethodCash, stored.PaymentMethod)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("499.5")))

	second, err := f.uc.CreateOrder(context.Background(), f.orderRequest("599"))
	require.NoError(t, err)
	assert.Equal(t, first.PaymentID, second.PaymentID)
	assert.True(t, f.storedPayment(t, first.PaymentID).Amount.Equal(decimal.NewFromInt(599)))
}

func TestCreateOrder_WithGateway(t *testing.T) {
	f := newPaymentFixture(t, &fakeGateway{})

	order, err := f.uc.CreateOrder(context.Background(), f.orderRequest("799"))
	require.NoError(t, err)

	assert.False(t, order.Manual)
	assert.Equal(t, "order_1", order.OrderID)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_key", order.Key)

	stored := f.storedPayment(t, order.PaymentID)
	assert.Equal(t, entity.PaymentStatusProcessing, stored.Status)
	assert.Equal(t, entity.PaymentMethodOnline, stored.PaymentMethod)
	assert.Equal(t, "order_1", stored.GatewayOrderID)

	again, err := f.uc.CreateOrder(context.Background(), f.orderRequest("799"))
	require.NoError(t, err)
	assert.Equal(t, order.PaymentID, again.PaymentID)
	assert.Equal(t, "order_2", f.storedPayment(t, order.PaymentID).GatewayOrderID)
}

func TestVerifyPayment(t *testing.T) {
	f := newPaymentFixture(t, &fakeGateway{})

	order, err := f.uc.CreateOrder(context.Background(), f.orderRequest("799"))
	require.NoError(t, err)

	t.Run("tampered signature never completes the payment", func(t *testing.T) {
		req := verifyRequest(order.OrderID, "pay_1", order.PaymentID)
		req.Signature = service.ComputeSignature("wrong-secret", order.OrderID, "pay_1")

		_, err := f.uc.VerifyPayment(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSignature)
		assert.Equal(t, entity.PaymentStatusProcessing, f.storedPayment(t, order.PaymentID).Status)
	})

	t.Run("order id must match the local record", func(t *testing.T) {
		_, err := f.uc.VerifyPayment(context.Background(), verifyRequest("order_other", "pay_1", order.PaymentID))
		assert.ErrorIs(t, err, ErrPaymentOrderMismatch)
	})

	t.Run("unknown payment", func(t *testing.T) {
		_, err := f.uc.VerifyPayment(context.Background(), verifyRequest(order.OrderID, "pay_1", uuid.New()))
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("valid signature completes the payment", func(t *testing.T) {
		req := verifyRequest(order.OrderID, "pay_1", uuid.Nil)
		req.PaymentID = ""

		resp, err := f.uc.VerifyPayment(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, "pay_1", resp.GatewayPaymentID)
		assert.Equal(t, "pay_1", resp.TransactionID)
		require.NotNil(t, resp.PaidAt)
		require.NotNil(t, resp.Booking)
		assert.Equal(t, "online", resp.Booking.PaymentMethod)
		assert.Equal(t, []string{service.EventPaymentCompleted}, f.events.keys)
	})

	t.Run("repeated callback is idempotent", func(t *testing.T) {
		resp, err := f.uc.VerifyPayment(context.Background(), verifyRequest(order.OrderID, "pay_1", order.PaymentID))
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.Len(t, f.events.keys, 1)
	})

	t.Run("completed booking rejects new orders", func(t *testing.T) {
		before := f.storedPayment(t, order.PaymentID)

		_, err := f.uc.CreateOrder(context.Background(), f.orderRequest("100"))
		assert.ErrorIs(t, err, ErrPaymentAlreadyCompleted)

		after := f.storedPayment(t, order.PaymentID)
		assert.Equal(t, before.Status, after.Status)
		assert.True(t, before.Amount.Equal(after.Amount))
		assert.Equal(t, before.GatewayOrderID, after.GatewayOrderID)

		var count int64
		require.NoError(t, f.db.Model(&entity.Payment{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestVerifyPayment_GatewayNotConfigured(t *testing.T) {
	f := newPaymentFixture(t, service.NewManualGateway())

	_, err := f.uc.VerifyPayment(context.Background(), verifyRequest("order_1", "pay_1", uuid.New()))
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
}

func TestUpdatePaymentStatus(t *testing.T) {
	f := newPaymentFixture(t, service.NewManualGateway())

	order, err := f.uc.CreateOrder(context.Background(), f.orderRequest("500"))
	require.NoError(t, err)
	ctx := adminContext(uuid.New())

	_, err = f.uc.UpdateStatus(ctx, order.PaymentID, &dto.UpdatePaymentStatusRequest{Status: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)

	_, err = f.uc.UpdateStatus(ctx, order.PaymentID, &dto.UpdatePaymentStatusRequest{Status: "refunded"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	notes := "  collected in cash  "
	completed, err := f.uc.UpdateStatus(ctx, order.PaymentID, &dto.UpdatePaymentStatusRequest{Status: "completed", Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	assert.Equal(t, "collected in cash", completed.Notes)
	require.NotNil(t, completed.PaidAt)
	assert.Nil(t, completed.RefundedAt)

	tooMuch := decimal.NewFromInt(501)
	_, err = f.uc.UpdateStatus(ctx, order.PaymentID, &dto.UpdatePaymentStatusRequest{Status: "refunded", RefundAmount: &tooMuch})
	assert.ErrorIs(t, err, ErrInvalidRefundAmount)

	partial := decimal.NewFromInt(200)
	refunded, err := f.uc.UpdateStatus(ctx, order.PaymentID, &dto.UpdatePaymentStatusRequest{Status: "refunded", RefundAmount: &partial})
	require.NoError(t, err)
	assert.Equal(t, "refunded", refunded.Status)
	require.NotNil(t, refunded.RefundedAt)
	require.NotNil(t, refunded.RefundAmount)
	assert.True(t, refunded.RefundAmount.Equal(partial))

	_, err = f.uc.UpdateStatus(ctx, order.PaymentID, &dto.UpdatePaymentStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	_, err = f.uc.UpdateStatus(ctx, uuid.New(), &dto.UpdatePaymentStatusRequest{Status: "failed"})
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	assert.Equal(t, int64(2), countAuditLogs(t, f.db, entity.AuditActionPaymentStatus))
}

func TestGetAllPayments_IncludesBookingSummary(t *testing.T) {
	f := newPaymentFixture(t, service.NewManualGateway())

	_, err := f.uc.CreateOrder(context.Background(), f.orderRequest("500"))
	require.NoError(t, err)

	payments, err := f.uc.GetAllPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.NotNil(t, payments[0].Booking)
	assert.Equal(t, "Asha", payments[0].Booking.Name)
	assert.Equal(t, "Repair", payments[0].Booking.ServiceType)
}
