package usecase

import (
	"context"
	"errors"

	"github.com/techcare/pro360-api/internal/converter"
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/domain/repository"
	"github.com/techcare/pro360-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidStaffID       = errors.New("invalid staff id")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetAllBookings(ctx context.Context) ([]dto.BookingResponse, error)
	AssignStaff(ctx context.Context, bookingID uuid.UUID, req *dto.AssignStaffRequest) (*dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	auditService service.AuditService
	events       service.EventPublisher
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
	events service.EventPublisher,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		auditService: auditService,
		events:       events,
	}
}

func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	booking := &entity.Booking{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		City:          req.City,
		Address:       req.Address,
		ServiceType:   req.ServiceType,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.BookingStatusPending,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	response := converter.BookingToResponse(booking)

	u.log.WithFields(logrus.Fields{
		"booking_id":   booking.ID,
		"service_type": booking.ServiceType,
	}).Info("Booking created")
	u.events.Publish(ctx, service.EventBookingCreated, response)

	return response, nil
}

func (u *bookingUsecase) GetAllBookings(ctx context.Context) ([]dto.BookingResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all bookings: %+v", err)
		return nil, err
	}

	return converter.BookingsToResponses(bookings), nil
}

// AssignStaff sets the staff reference and forces the status to assigned.
// The staff id is not checked against the staff table.
func (u *bookingUsecase) AssignStaff(ctx context.Context, bookingID uuid.UUID, req *dto.AssignStaffRequest) (*dto.BookingResponse, error) {
	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return nil, ErrInvalidStaffID
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	old := converter.BookingToResponse(booking)
	booking.AssignTo(staffID)

	affected, err := u.bookingRepo.UpdateFields(tx, bookingID, map[string]interface{}{
		"assigned_staff_id": booking.AssignedStaffID,
		"status":            booking.Status,
	})
	if err != nil {
		u.log.Warnf("Failed to assign staff: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrBookingNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionBookingAssign, "booking", bookingID.String(),
		map[string]interface{}{"status": old.Status, "assignedStaffId": old.AssignedStaffID},
		map[string]interface{}{"status": booking.Status, "assignedStaffId": staffID},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response, err := u.reload(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"staff_id":   staffID,
	}).Info("Staff assigned to booking")
	u.events.Publish(ctx, service.EventBookingAssigned, response)

	return response, nil
}

func (u *bookingUsecase) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	status := entity.BookingStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidBookingStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	affected, err := u.bookingRepo.UpdateFields(tx, bookingID, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		u.log.Warnf("Failed to update booking status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrBookingNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionBookingStatus, "booking", bookingID.String(),
		map[string]interface{}{"status": booking.Status},
		map[string]interface{}{"status": status},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, bookingID)
}

func (u *bookingUsecase) reload(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(booking), nil
}
