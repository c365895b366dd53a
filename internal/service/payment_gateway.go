package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrInvalidSignature     = errors.New("invalid payment signature")
	ErrGatewayResponse      = errors.New("unexpected payment gateway response")
)

const gatewayCurrency = "INR"

type GatewayOrderRequest struct {
	BookingID uuid.UUID
	Amount    decimal.Decimal
}

type GatewayOrder struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
}

// PaymentGateway is the checkout capability. The manual variant is used when
// no key pair is configured and reports Enabled() == false.
type PaymentGateway interface {
	Enabled() bool
	KeyID() string
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) error
}

// orderCreator is the subset of the razorpay order resource used here.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type razorpayGateway struct {
	keyID     string
	keySecret string
	orders    orderCreator
	log       *logrus.Logger
}

func NewRazorpayGateway(keyID, keySecret string, timeout time.Duration, log *logrus.Logger) PaymentGateway {
	client := razorpay.NewClient(keyID, keySecret)
	if seconds := int16(timeout / time.Second); seconds > 0 {
		client.SetTimeout(seconds)
	}
	return newRazorpayGateway(keyID, keySecret, client.Order, log)
}

func newRazorpayGateway(keyID, keySecret string, orders orderCreator, log *logrus.Logger) *razorpayGateway {
	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		orders:    orders,
		log:       log,
	}
}

func (g *razorpayGateway) Enabled() bool {
	return true
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paise := req.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	data := map[string]interface{}{
		"amount":   paise,
		"currency": gatewayCurrency,
		"receipt":  receiptFor(req.BookingID, time.Now()),
		"notes": map[string]interface{}{
			"bookingId": req.BookingID.String(),
		},
	}

	body, err := g.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, ErrGatewayResponse
	}

	order := &GatewayOrder{
		ID:       orderID,
		Amount:   req.Amount,
		Currency: gatewayCurrency,
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = decimal.NewFromFloat(amount).Div(decimal.NewFromInt(100))
	}
	if currency, ok := body["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}

	g.log.WithFields(logrus.Fields{
		"booking_id": req.BookingID,
		"order_id":   order.ID,
	}).Info("Gateway order created")

	return order, nil
}

func (g *razorpayGateway) VerifySignature(orderID, paymentID, signature string) error {
	expected := ComputeSignature(g.keySecret, orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// ComputeSignature returns the hex HMAC-SHA256 of "orderID|paymentID".
func ComputeSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Receipts are capped at 40 characters by the gateway.
func receiptFor(bookingID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("bk_%s_%d", bookingID.String()[:8], now.Unix())
}

type manualGateway struct{}

func NewManualGateway() PaymentGateway {
	return manualGateway{}
}

func (manualGateway) Enabled() bool {
	return false
}

func (manualGateway) KeyID() string {
	return ""
}

func (manualGateway) CreateOrder(context.Context, GatewayOrderRequest) (*GatewayOrder, error) {
	return nil, ErrGatewayNotConfigured
}

func (manualGateway) VerifySignature(string, string, string) error {
	return ErrGatewayNotConfigured
}
