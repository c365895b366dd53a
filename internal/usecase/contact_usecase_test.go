package usecase

import (
	"context"
	"testing"

	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/repository"
	"github.com/techcare/pro360-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessages(t *testing.T) {
	db := newTestDB(t)
	log := quietLogger()
	auditLogRepo := repository.NewAuditLogRepository()
	uc := NewContactUsecase(db, log, repository.NewContactRepository(), service.NewAuditService(log, auditLogRepo))
	auditUC := NewAuditLogUsecase(db, log, auditLogRepo)

	created, err := uc.CreateContact(context.Background(), &dto.CreateContactRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Message: "Do you service printers?",
	})
	require.NoError(t, err)
	assert.False(t, created.Read)

	adminID := uuid.New()
	read, err := uc.MarkRead(adminContext(adminID), created.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	_, err = uc.MarkRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrContactNotFound)

	all, err := uc.GetAllContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Read)

	logs, err := auditUC.GetAllAuditLogs(context.Background(), dto.AuditLogFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, logs.Total)
	assert.Equal(t, entity.AuditActionContactRead, logs.Logs[0].Action)
	assert.Equal(t, "contact", logs.Logs[0].Entity)
	assert.Equal(t, created.ID.String(), logs.Logs[0].EntityID)

	otherAdmin := uuid.New()
	filtered, err := auditUC.GetAllAuditLogs(context.Background(), dto.AuditLogFilter{AdminID: &otherAdmin})
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Total)
	assert.NotNil(t, filtered.Logs)

	filtered, err = auditUC.GetAllAuditLogs(context.Background(), dto.AuditLogFilter{Action: entity.AuditActionStaffDelete})
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Total)

	filtered, err = auditUC.GetAllAuditLogs(context.Background(), dto.AuditLogFilter{Action: entity.AuditActionContactRead, AdminID: &adminID})
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.Total)

	one, err := auditUC.GetAuditLog(context.Background(), logs.Logs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, one.AdminID)
	assert.Equal(t, adminID, *one.AdminID)

	_, err = auditUC.GetAuditLog(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
