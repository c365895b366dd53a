package repository

import (
	"errors"

	"github.com/techcare/pro360-api/internal/domain/entity"
	domainRepo "github.com/techcare/pro360-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindAll(db *gorm.DB) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("Booking").
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Booking.AssignedStaff").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByGatewayOrderID(db *gorm.DB, orderID string) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("gateway_order_id = ?", orderID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindLatestByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ExistsCompletedForBooking(db *gorm.DB, bookingID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, entity.PaymentStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

func (r *paymentRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.Payment{}).
		Where("id = ?", id).
		Updates(fields).Error
}
