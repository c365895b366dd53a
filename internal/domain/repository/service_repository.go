package repository

import (
	"github.com/techcare/pro360-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindActive(db *gorm.DB) ([]entity.Service, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindByNameAndCategory(db *gorm.DB, name string, category entity.ServiceCategory) (*entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
