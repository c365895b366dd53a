package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceCategory string

const (
	ServiceCategoryAMC    ServiceCategory = "amc"
	ServiceCategoryHomeIT ServiceCategory = "homeIT"
)

func (c ServiceCategory) IsValid() bool {
	return c == ServiceCategoryAMC || c == ServiceCategoryHomeIT
}

const DefaultCurrency = "INR"

// Service is an offering shown on the booking form. Price is display text;
// BasePrice is the number used for payments.
type Service struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	Category     ServiceCategory `gorm:"type:varchar(20);not null;index:idx_services_category_order,priority:1" json:"category"`
	Price        string          `gorm:"type:varchar(255);not null" json:"price"`
	BasePrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"basePrice"`
	Currency     string          `gorm:"type:varchar(3);not null" json:"currency"`
	Active       bool            `gorm:"not null;index" json:"active"`
	DisplayOrder int             `gorm:"not null;index:idx_services_category_order,priority:2" json:"displayOrder"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	return nil
}
