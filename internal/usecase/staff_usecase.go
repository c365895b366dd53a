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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound = errors.New("staff member not found")
)

type StaffUsecase interface {
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffResponse, error)
	GetAllStaff(ctx context.Context) ([]dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, staffID uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, staffID uuid.UUID) error
}

type staffUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	staffRepo    repository.StaffRepository
	auditService service.AuditService
}

func NewStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	auditService service.AuditService,
) StaffUsecase {
	return &staffUsecase{
		db:           db,
		log:          log,
		staffRepo:    staffRepo,
		auditService: auditService,
	}
}

func (u *staffUsecase) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	staff := &entity.Staff{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Location: req.Location,
		Skills:   datatypes.JSONSlice[string](skills),
		Active:   active,
	}

	if err := u.staffRepo.Create(tx, staff); err != nil {
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	response := converter.StaffToResponse(staff)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionStaffCreate, "staff", staff.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *staffUsecase) GetStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) GetAllStaff(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all staff: %+v", err)
		return nil, err
	}

	return converter.StaffListToResponses(staff), nil
}

func (u *staffUsecase) UpdateStaff(ctx context.Context, staffID uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	old := converter.StaffToResponse(staff)

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Location != nil {
		staff.Location = *req.Location
	}
	if req.Skills != nil {
		staff.Skills = datatypes.JSONSlice[string](req.Skills)
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := u.staffRepo.Update(tx, staff); err != nil {
		u.log.Warnf("Failed to update staff: %+v", err)
		return nil, err
	}

	response := converter.StaffToResponse(staff)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionStaffUpdate, "staff", staffID.String(), old, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// DeleteStaff removes the staff member. Bookings assigned to them keep the dangling reference.
func (u *staffUsecase) DeleteStaff(ctx context.Context, staffID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}

	affected, err := u.staffRepo.Delete(tx, staffID)
	if err != nil {
		u.log.Warnf("Failed to delete staff: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrStaffNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionStaffDelete, "staff", staffID.String(), converter.StaffToResponse(staff)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
