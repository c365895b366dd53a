package usecase

import (
	"context"
	"errors"

	"github.com/techcare/pro360-api/internal/converter"
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxAuditLogPage = 500

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

// AuditLogUsecase exposes the admin action trail read-only; entries are
// written by the audit service inside each admin mutation.
type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, filter dto.AuditLogFilter) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, filter dto.AuditLogFilter) (*dto.AuditLogListResponse, error) {
	limit := filter.Limit
	if limit <= 0 || limit > maxAuditLogPage {
		limit = maxAuditLogPage
	}

	entries, err := u.auditLogRepo.Find(u.db.WithContext(ctx), repository.AuditLogQuery{
		Action:  filter.Action,
		AdminID: filter.AdminID,
		Since:   filter.Since,
		Limit:   limit,
	})
	if err != nil {
		u.log.WithField("action", filter.Action).Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(entries),
		Total: len(entries),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	entry, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.WithField("auditLogId", id).Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(entry), nil
}
