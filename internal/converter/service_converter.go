package converter

import (
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
)

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:           service.ID,
		Name:         service.Name,
		Description:  service.Description,
		Category:     string(service.Category),
		Price:        service.Price,
		BasePrice:    service.BasePrice,
		Currency:     service.Currency,
		Active:       service.Active,
		DisplayOrder: service.DisplayOrder,
		CreatedAt:    service.CreatedAt,
		UpdatedAt:    service.UpdatedAt,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}

// ServicesToPublicResponse splits services into the two category buckets,
// preserving the input order within each bucket.
func ServicesToPublicResponse(services []entity.Service) *dto.PublicServicesResponse {
	grouped := &dto.PublicServicesResponse{
		AMC:    []dto.ServiceResponse{},
		HomeIT: []dto.ServiceResponse{},
	}

	for i := range services {
		switch services[i].Category {
		case entity.ServiceCategoryAMC:
			grouped.AMC = append(grouped.AMC, *ServiceToResponse(&services[i]))
		case entity.ServiceCategoryHomeIT:
			grouped.HomeIT = append(grouped.HomeIT, *ServiceToResponse(&services[i]))
		}
	}

	return grouped
}
