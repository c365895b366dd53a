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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrInvalidCategory      = errors.New("category must be either amc or homeIT")
	ErrNegativeBasePrice    = errors.New("base price cannot be negative")
	ErrNegativeDisplayOrder = errors.New("display order cannot be negative")
)

type ServiceUsecase interface {
	GetPublicServices(ctx context.Context) (*dto.PublicServicesResponse, error)
	GetAllServices(ctx context.Context) ([]dto.ServiceResponse, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID uuid.UUID) error
	SeedDefaultServices(ctx context.Context) (int, error)
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	auditService service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

func (u *serviceUsecase) GetPublicServices(ctx context.Context) (*dto.PublicServicesResponse, error) {
	services, err := u.serviceRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active services: %+v", err)
		return nil, err
	}

	return converter.ServicesToPublicResponse(services), nil
}

func (u *serviceUsecase) GetAllServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all services: %+v", err)
		return nil, err
	}

	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	category := entity.ServiceCategory(req.Category)
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Price:       req.Price,
		BasePrice:   decimal.Zero,
		Currency:    entity.DefaultCurrency,
		Active:      true,
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.Currency != "" {
		svc.Currency = req.Currency
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if req.DisplayOrder != nil {
		svc.DisplayOrder = *req.DisplayOrder
	}
	if err := validateServiceNumbers(svc); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	response := converter.ServiceToResponse(svc)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionServiceCreate, "service", svc.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if req.Category != nil && !entity.ServiceCategory(*req.Category).IsValid() {
		return nil, ErrInvalidCategory
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	old := converter.ServiceToResponse(svc)

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Category != nil {
		svc.Category = entity.ServiceCategory(*req.Category)
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.Currency != nil {
		svc.Currency = *req.Currency
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if req.DisplayOrder != nil {
		svc.DisplayOrder = *req.DisplayOrder
	}
	if err := validateServiceNumbers(svc); err != nil {
		return nil, err
	}

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	response := converter.ServiceToResponse(svc)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionServiceUpdate, "service", serviceID.String(), old, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *serviceUsecase) DeleteService(ctx context.Context, serviceID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	if _, err := u.serviceRepo.Delete(tx, serviceID); err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionServiceDelete, "service", serviceID.String(), converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// SeedDefaultServices inserts the default catalogue, skipping entries whose
// (name, category) already exists. It returns how many were created.
func (u *serviceUsecase) SeedDefaultServices(ctx context.Context) (int, error) {
	db := u.db.WithContext(ctx)
	created := 0

	for _, def := range DefaultServices() {
		existing, err := u.serviceRepo.FindByNameAndCategory(db, def.Name, def.Category)
		if err != nil {
			u.log.Warnf("Failed to find service: %+v", err)
			return created, err
		}
		if existing != nil {
			u.log.WithField("service", def.Name).Debug("Service already present, skipping")
			continue
		}

		svc := def
		if err := u.serviceRepo.Create(db, &svc); err != nil {
			u.log.Warnf("Failed to create service: %+v", err)
			return created, err
		}
		created++
	}

	u.log.WithField("created", created).Info("Default services seeded")

	return created, nil
}

func validateServiceNumbers(svc *entity.Service) error {
	if svc.BasePrice.IsNegative() {
		return ErrNegativeBasePrice
	}
	if svc.DisplayOrder < 0 {
		return ErrNegativeDisplayOrder
	}
	return nil
}

// DefaultServices is the catalogue shown on a fresh install.
func DefaultServices() []entity.Service {
	return []entity.Service{
		{Name: "PC/Laptop AMC", Description: "Comprehensive maintenance contract for PCs and laptops", Category: entity.ServiceCategoryAMC, Price: "Starting from ₹399/month", BasePrice: decimal.NewFromInt(399), Currency: entity.DefaultCurrency, Active: true, DisplayOrder: 1},
		{Name: "Network AMC", Description: "Network infrastructure maintenance and monitoring", Category: entity.ServiceCategoryAMC, Price: "Starting from ₹699/month", BasePrice: decimal.NewFromInt(699), Currency: entity.DefaultCurrency, Active: true, DisplayOrder: 2},
		{Name: "Printer AMC", Description: "Regular maintenance and support for printers", Category: entity.ServiceCategoryAMC, Price: "Starting from ₹499/month", BasePrice: decimal.NewFromInt(499), Currency: entity.DefaultCurrency, Active: true, DisplayOrder: 3},
		{Name: "Installation", Description: "Software and hardware installation services", Category: entity.ServiceCategoryHomeIT, Price: "Starting from ₹399", BasePrice: decimal.NewFromInt(399), Currency: entity.DefaultCurrency, Active: true, DisplayOrder: 1},
		{Name: "Troubleshooting", Description: "Diagnose and fix technical issues", Category: entity.ServiceCategoryHomeIT, Price: "Starting from ₹399", BasePrice: decimal.NewFromInt(399), Currency: entity.DefaultCurrency, Active: true, DisplayOrder: 2},
		{Name: "Repair", Description: "Hardware and software repair services", Category: entity.ServiceCategoryHomeIT, Price: "Starting from ₹599", BasePrice: decimal.NewFromInt(599), Currency: entity.DefaultCurrency, Active: true, DisplayOrder: 3},
		{Name: "Upgrade", Description: "System upgrades and performance optimization", Category: entity.ServiceCategoryHomeIT, Price: "Starting from ₹799", BasePrice: decimal.NewFromInt(799), Currency: entity.DefaultCurrency, Active: true, DisplayOrder: 4},
	}
}
