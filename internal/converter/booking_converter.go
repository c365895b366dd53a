package converter

import (
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO.
// AssignedStaff stays nil when no staff is assigned or the staff row is gone.
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:              booking.ID,
		Name:            booking.Name,
		Phone:           booking.Phone,
		Email:           booking.Email,
		City:            booking.City,
		Address:         booking.Address,
		ServiceType:     booking.ServiceType,
		PreferredDate:   booking.PreferredDate,
		PreferredTime:   booking.PreferredTime,
		Status:          string(booking.Status),
		AssignedStaffID: booking.AssignedStaffID,
		AssignedStaff:   StaffToSummary(booking.AssignedStaff),
		PaymentMethod:   booking.PaymentMethod,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
