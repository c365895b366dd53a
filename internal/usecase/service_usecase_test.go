package usecase

import (
	"context"
	"testing"

	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/repository"
	"github.com/techcare/pro360-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newServiceUsecase(t *testing.T) (ServiceUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := quietLogger()
	uc := NewServiceUsecase(db, log, repository.NewServiceRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()))
	return uc, db
}

func TestSeedDefaultServices_Idempotent(t *testing.T) {
	uc, _ := newServiceUsecase(t)

	created, err := uc.SeedDefaultServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, created)

	created, err = uc.SeedDefaultServices(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)

	all, err := uc.GetAllServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestGetPublicServices_GroupsActiveByCategory(t *testing.T) {
	uc, db := newServiceUsecase(t)

	_, err := uc.SeedDefaultServices(context.Background())
	require.NoError(t, err)

	inactive := &entity.Service{
		Name:         "Retired AMC",
		Category:     entity.ServiceCategoryAMC,
		Price:        "Starting from ₹99/month",
		BasePrice:    decimal.NewFromInt(99),
		Currency:     entity.DefaultCurrency,
		Active:       false,
		DisplayOrder: 0,
	}
	require.NoError(t, db.Create(inactive).Error)

	public, err := uc.GetPublicServices(context.Background())
	require.NoError(t, err)

	require.Len(t, public.AMC, 3)
	require.Len(t, public.HomeIT, 4)
	assert.Equal(t, "PC/Laptop AMC", public.AMC[0].Name)
	assert.Equal(t, "Printer AMC", public.AMC[2].Name)
	assert.Equal(t, "Installation", public.HomeIT[0].Name)
	assert.Equal(t, "Upgrade", public.HomeIT[3].Name)
	for _, svc := range public.AMC {
		assert.NotEqual(t, "Retired AMC", svc.Name)
	}
}

func TestGetPublicServices_EmptyCatalogue(t *testing.T) {
	uc, _ := newServiceUsecase(t)

	public, err := uc.GetPublicServices(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, public.AMC)
	assert.NotNil(t, public.HomeIT)
	assert.Empty(t, public.AMC)
	assert.Empty(t, public.HomeIT)
}

func TestCreateService(t *testing.T) {
	uc, db := newServiceUsecase(t)

	t.Run("applies defaults", func(t *testing.T) {
		svc, err := uc.CreateService(adminContext(uuid.New()), &dto.CreateServiceRequest{
			Name:     "Data Recovery",
			Category: "homeIT",
			Price:    "Starting from ₹999",
		})
		require.NoError(t, err)

		assert.True(t, svc.BasePrice.IsZero())
		assert.Equal(t, "INR", svc.Currency)
		assert.True(t, svc.Active)
		assert.Zero(t, svc.DisplayOrder)
		assert.Equal(t, int64(1), countAuditLogs(t, db, entity.AuditActionServiceCreate))
	})

	t.Run("rejects negative base price", func(t *testing.T) {
		negative := decimal.NewFromInt(-1)
		_, err := uc.CreateService(context.Background(), &dto.CreateServiceRequest{
			Name:      "Broken",
			Category:  "amc",
			Price:     "free",
			BasePrice: &negative,
		})
		assert.ErrorIs(t, err, ErrNegativeBasePrice)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := uc.CreateService(context.Background(), &dto.CreateServiceRequest{
			Name:     "Broken",
			Category: "homeit",
			Price:    "free",
		})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestUpdateService_Partial(t *testing.T) {
	uc, _ := newServiceUsecase(t)

	created, err := uc.CreateService(context.Background(), &dto.CreateServiceRequest{
		Name:     "Data Recovery",
		Category: "homeIT",
		Price:    "Starting from ₹999",
	})
	require.NoError(t, err)

	inactive := false
	order := 5
	updated, err := uc.UpdateService(context.Background(), created.ID, &dto.UpdateServiceRequest{
		Active:       &inactive,
		DisplayOrder: &order,
	})
	require.NoError(t, err)

	assert.Equal(t, "Data Recovery", updated.Name)
	assert.Equal(t, "homeIT", updated.Category)
	assert.False(t, updated.Active)
	assert.Equal(t, 5, updated.DisplayOrder)

	fetched, err := uc.GetService(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Active)

	bad := "other"
	_, err = uc.UpdateService(context.Background(), created.ID, &dto.UpdateServiceRequest{Category: &bad})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = uc.UpdateService(context.Background(), uuid.New(), &dto.UpdateServiceRequest{Active: &inactive})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteService(t *testing.T) {
	uc, db := newServiceUsecase(t)

	created, err := uc.CreateService(context.Background(), &dto.CreateServiceRequest{
		Name:     "Data Recovery",
		Category: "homeIT",
		Price:    "Starting from ₹999",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteService(context.Background(), created.ID))
	assert.ErrorIs(t, uc.DeleteService(context.Background(), created.ID), ErrServiceNotFound)
	assert.Equal(t, int64(1), countAuditLogs(t, db, entity.AuditActionServiceDelete))

	_, err = uc.GetService(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
