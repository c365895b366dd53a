package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name         string           `json:"name" validate:"required,max=255"`
	Description  string           `json:"description"`
	Category     string           `json:"category" validate:"required,oneof=amc homeIT"`
	Price        string           `json:"price" validate:"required,max=255"`
	BasePrice    *decimal.Decimal `json:"basePrice"`
	Currency     string           `json:"currency" validate:"omitempty,len=3"`
	Active       *bool            `json:"active"`
	DisplayOrder *int             `json:"displayOrder"`
}

func (r *CreateServiceRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.Price = strings.TrimSpace(r.Price)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

// UpdateServiceRequest is a partial update; nil fields are left unchanged.
type UpdateServiceRequest struct {
	Name         *string          `json:"name" validate:"omitnil,min=1,max=255"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category" validate:"omitnil,oneof=amc homeIT"`
	Price        *string          `json:"price" validate:"omitnil,min=1,max=255"`
	BasePrice    *decimal.Decimal `json:"basePrice"`
	Currency     *string          `json:"currency" validate:"omitnil,len=3"`
	Active       *bool            `json:"active"`
	DisplayOrder *int             `json:"displayOrder"`
}

func (r *UpdateServiceRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Description)
	trimPtr(r.Category)
	trimPtr(r.Price)
	if r.Currency != nil {
		*r.Currency = strings.ToUpper(strings.TrimSpace(*r.Currency))
	}
}

// Response DTOs

type ServiceResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category"`
	Price        string          `json:"price"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Currency     string          `json:"currency"`
	Active       bool            `json:"active"`
	DisplayOrder int             `json:"displayOrder"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PublicServicesResponse groups active services for the booking form.
type PublicServicesResponse struct {
	AMC    []ServiceResponse `json:"amc"`
	HomeIT []ServiceResponse `json:"homeIT"`
}
