package converter

import (
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO,
// embedding a booking summary when the booking was preloaded.
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	response := &dto.PaymentResponse{
		ID:               payment.ID,
		BookingID:        payment.BookingID,
		Amount:           payment.Amount,
		PaymentMethod:    string(payment.PaymentMethod),
		Status:           string(payment.Status),
		GatewayOrderID:   payment.GatewayOrderID,
		GatewayPaymentID: payment.GatewayPaymentID,
		TransactionID:    payment.TransactionID,
		PaidAt:           payment.PaidAt,
		RefundedAt:       payment.RefundedAt,
		Notes:            payment.Notes,
		CreatedAt:        payment.CreatedAt,
		UpdatedAt:        payment.UpdatedAt,
	}

	if payment.RefundAmount.Valid {
		amount := payment.RefundAmount.Decimal
		response.RefundAmount = &amount
	}

	if payment.Booking != nil {
		response.Booking = &dto.PaymentBookingSummary{
			ID:          payment.Booking.ID,
			Name:        payment.Booking.Name,
			Phone:       payment.Booking.Phone,
			Email:       payment.Booking.Email,
			ServiceType: payment.Booking.ServiceType,
			Status:      string(payment.Booking.Status),
		}
	}

	return response
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}

func PaymentToDetailResponse(payment *entity.Payment) *dto.PaymentDetailResponse {
	if payment == nil {
		return nil
	}

	base := PaymentToResponse(payment)
	base.Booking = nil

	return &dto.PaymentDetailResponse{
		PaymentResponse: *base,
		Booking:         BookingToResponse(payment.Booking),
	}
}
