package converter

import (
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
)

// AdminToResponse converts an Admin entity to AdminResponse DTO. The password hash is never copied.
func AdminToResponse(admin *entity.Admin) *dto.AdminResponse {
	if admin == nil {
		return nil
	}

	return &dto.AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}
