package repository

import (
	"errors"

	"github.com/techcare/pro360-api/internal/domain/entity"
	domainRepo "github.com/techcare/pro360-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct{}

func NewContactRepository() domainRepo.ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Create(db *gorm.DB, contact *entity.Contact) error {
	return db.Create(contact).Error
}

func (r *contactRepository) FindAll(db *gorm.DB) ([]entity.Contact, error) {
	var contacts []entity.Contact
	err := db.Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Contact, error) {
	var contact entity.Contact
	err := db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) MarkRead(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Contact{}).
		Where("id = ?", id).
		Update("read", true)
	return result.RowsAffected, result.Error
}
