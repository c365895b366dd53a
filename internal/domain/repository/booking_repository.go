package repository

import (
	"github.com/techcare/pro360-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindAll(db *gorm.DB) ([]entity.Booking, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error)
}
