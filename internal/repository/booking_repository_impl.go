package repository

import (
	"errors"

	"github.com/techcare/pro360-api/internal/domain/entity"
	domainRepo "github.com/techcare/pro360-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindAll(db *gorm.DB) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("AssignedStaff").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("AssignedStaff").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateFields applies a partial update and returns affected rows; 0 means the booking does not exist.
// Concurrent writers are not fenced, the last update wins.
func (r *bookingRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}
