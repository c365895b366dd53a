package repository

import (
	"github.com/techcare/pro360-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(db *gorm.DB, contact *entity.Contact) error
	FindAll(db *gorm.DB) ([]entity.Contact, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Contact, error)
	MarkRead(db *gorm.DB, id uuid.UUID) (int64, error)
}
