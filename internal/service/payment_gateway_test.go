package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	got  map[string]interface{}
	resp map[string]interface{}
	err  error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.got = data
	return f.resp, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestComputeSignature_KnownVector(t *testing.T) {
	sig := ComputeSignature("secret", "order_1", "pay_1")
	assert.Equal(t, "52115a0d3400de9e86aade1f1b6eba9e8974604f4e267a9e9a16633a4c8dd2cb", sig)
	assert.NotEqual(t, sig, ComputeSignature("other", "order_1", "pay_1"))
	assert.NotEqual(t, sig, ComputeSignature("secret", "order_1", "pay_2"))
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	gw := newRazorpayGateway("rzp_test_key", "shh", &fakeOrders{}, quietLogger())
	valid := ComputeSignature("shh", "order_abc", "pay_xyz")

	assert.NoError(t, gw.VerifySignature("order_abc", "pay_xyz", valid))

	tampered := []byte(valid)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
	}{
		{"tampered signature", "order_abc", "pay_xyz", string(tampered)},
		{"uppercase digest", "order_abc", "pay_xyz", strings.ToUpper(valid)},
		{"swapped ids", "pay_xyz", "order_abc", valid},
		{"empty signature", "order_abc", "pay_xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gw.VerifySignature(tt.orderID, tt.paymentID, tt.signature)
			assert.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	orders := &fakeOrders{resp: map[string]interface{}{
		"id":       "order_123",
		"amount":   float64(49950),
		"currency": "INR",
	}}
	gw := newRazorpayGateway("rzp_test_key", "shh", orders, quietLogger())
	bookingID := uuid.New()

	order, err := gw.CreateOrder(context.Background(), GatewayOrderRequest{
		BookingID: bookingID,
		Amount:    decimal.RequireFromString("499.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, "order_123", order.ID)
	assert.True(t, decimal.RequireFromString("499.5").Equal(order.Amount))
	assert.Equal(t, "INR", order.Currency)

	assert.Equal(t, int64(49950), orders.got["amount"])
	assert.Equal(t, "INR", orders.got["currency"])
	assert.True(t, strings.HasPrefix(orders.got["receipt"].(string), "bk_"+bookingID.String()[:8]+"_"))
	assert.Equal(t, bookingID.String(), orders.got["notes"].(map[string]interface{})["bookingId"])
}

func TestRazorpayGateway_CreateOrderFailures(t *testing.T) {
	t.Run("sdk error", func(t *testing.T) {
		gw := newRazorpayGateway("k", "s", &fakeOrders{err: errors.New("boom")}, quietLogger())
		_, err := gw.CreateOrder(context.Background(), GatewayOrderRequest{BookingID: uuid.New(), Amount: decimal.NewFromInt(1)})
		assert.Error(t, err)
	})

	t.Run("missing order id", func(t *testing.T) {
		gw := newRazorpayGateway("k", "s", &fakeOrders{resp: map[string]interface{}{}}, quietLogger())
		_, err := gw.CreateOrder(context.Background(), GatewayOrderRequest{BookingID: uuid.New(), Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, ErrGatewayResponse)
	})
}

func TestReceiptFitsGatewayLimit(t *testing.T) {
	receipt := receiptFor(uuid.New(), time.Now())
	assert.LessOrEqual(t, len(receipt), 40)
}

func TestManualGateway(t *testing.T) {
	gw := NewManualGateway()
	assert.False(t, gw.Enabled())
	assert.Empty(t, gw.KeyID())

	_, err := gw.CreateOrder(context.Background(), GatewayOrderRequest{})
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
	assert.ErrorIs(t, gw.VerifySignature("a", "b", "c"), ErrGatewayNotConfigured)
}
