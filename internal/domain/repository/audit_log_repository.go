package repository

import (
	"time"

	"github.com/techcare/pro360-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogQuery selects audit entries; empty fields are not applied.
type AuditLogQuery struct {
	Action  string
	AdminID *uuid.UUID
	Since   *time.Time
	Limit   int
}

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	Find(db *gorm.DB, query AuditLogQuery) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
