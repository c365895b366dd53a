package converter

import (
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
)

func ContactToResponse(contact *entity.Contact) *dto.ContactResponse {
	if contact == nil {
		return nil
	}

	return &dto.ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		Read:      contact.Read,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

func ContactsToResponses(contacts []entity.Contact) []dto.ContactResponse {
	responses := make([]dto.ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *ContactToResponse(&contacts[i])
	}
	return responses
}
