package converter

import (
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
)

func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	skills := []string(staff.Skills)
	if skills == nil {
		skills = []string{}
	}

	return &dto.StaffResponse{
		ID:        staff.ID,
		Name:      staff.Name,
		Phone:     staff.Phone,
		Email:     staff.Email,
		Location:  staff.Location,
		Skills:    skills,
		Active:    staff.Active,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
}

func StaffListToResponses(staff []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(staff))
	for i := range staff {
		responses[i] = *StaffToResponse(&staff[i])
	}
	return responses
}

// StaffToSummary returns the {id, name, phone, location} view embedded in bookings.
func StaffToSummary(staff *entity.Staff) *dto.StaffSummary {
	if staff == nil {
		return nil
	}

	return &dto.StaffSummary{
		ID:       staff.ID,
		Name:     staff.Name,
		Phone:    staff.Phone,
		Location: staff.Location,
	}
}
