package repository

import (
	"github.com/techcare/pro360-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindAll(db *gorm.DB) ([]entity.Payment, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByGatewayOrderID(db *gorm.DB, orderID string) (*entity.Payment, error)
	FindLatestByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Payment, error)
	ExistsCompletedForBooking(db *gorm.DB, bookingID uuid.UUID) (bool, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
}
