package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/usecase"
	"github.com/techcare/pro360-api/pkg/response"
	"github.com/techcare/pro360-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// CreateOrder opens a checkout for a booking
// @Summary Create payment order
// @Description Creates a gateway order, or records a pending cash payment when no gateway is configured
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentOrderRequest true "Create Order Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /payment/create-order [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.paymentUsecase.CreateOrder(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAmount):
			response.Error(w, http.StatusBadRequest, "Booking ID and a positive amount are required", nil)
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, usecase.ErrPaymentAlreadyCompleted):
			response.Conflict(w, "Payment already completed for this booking")
		default:
			response.InternalServerError(w, "Error creating payment order")
		}
		return
	}

	if order.Manual {
		response.Success(w, http.StatusOK, "Payment gateway not configured. Payment recorded as cash on service", order)
		return
	}

	response.Success(w, http.StatusOK, "Payment order created successfully", order)
}

// VerifyPayment confirms a gateway callback
// @Summary Verify payment
// @Description Verifies the HMAC-SHA256 signature over order id and payment id, then completes the payment
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payment/verify [post]
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.VerifyPayment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGatewayNotConfigured):
			response.Error(w, http.StatusBadRequest, "Payment gateway not configured", nil)
		case errors.Is(err, usecase.ErrInvalidSignature):
			response.Error(w, http.StatusBadRequest, "Invalid payment signature", nil)
		case errors.Is(err, usecase.ErrPaymentNotFound):
			response.NotFound(w, "Payment not found")
		case errors.Is(err, usecase.ErrPaymentOrderMismatch):
			response.Error(w, http.StatusBadRequest, "Payment does not match the gateway order", nil)
		case errors.Is(err, usecase.ErrInvalidStatusTransition):
			response.Error(w, http.StatusBadRequest, "Payment can no longer be completed", nil)
		default:
			response.InternalServerError(w, "Error verifying payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment verified successfully", payment)
}

func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentUsecase.GetAllPayments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments fetched successfully", payments)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	payment, err := h.paymentUsecase.GetPayment(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			response.NotFound(w, "Payment not found")
			return
		}
		response.InternalServerError(w, "Error fetching payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment fetched successfully", payment)
}

func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.UpdateStatus(r.Context(), paymentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPaymentNotFound):
			response.NotFound(w, "Payment not found")
		case errors.Is(err, usecase.ErrInvalidPaymentStatus):
			response.Error(w, http.StatusBadRequest, "Invalid payment status", nil)
		case errors.Is(err, usecase.ErrInvalidStatusTransition):
			response.Error(w, http.StatusBadRequest, "Payment status transition not allowed", nil)
		case errors.Is(err, usecase.ErrInvalidRefundAmount):
			response.Error(w, http.StatusBadRequest, "Refund amount must be between 0 and the payment amount", nil)
		default:
			response.InternalServerError(w, "Error updating payment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment status updated successfully", payment)
}
